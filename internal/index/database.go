// Package index handles SQLite operations for the snippet metadata store.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jwhitaker/snip/internal/sqlutil"
)

var (
	// ErrNotFound indicates the requested snippet ID is not in the index.
	ErrNotFound = errors.New("snippet not found")
	// ErrValidation indicates a record that violates the index contract
	// (empty title, no tags, or a tag containing the delimiter).
	ErrValidation = errors.New("invalid snippet")
)

// Database is the SQLite record store handle.
type Database struct {
	db *sql.DB
}

// Open opens or creates the record store at dbPath.
func Open(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snippets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		tags TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		filepath TEXT NOT NULL,
		created TEXT NOT NULL,
		modified TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snippets_title ON snippets(title);
	CREATE INDEX IF NOT EXISTS idx_snippets_tags ON snippets(tags);
	CREATE INDEX IF NOT EXISTS idx_snippets_modified ON snippets(modified);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

func validate(title string, tags []string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	return validateTags(tags)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: at least one tag is required", ErrValidation)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tags must not be empty", ErrValidation)
		}
		if strings.Contains(tag, TagDelimiter) {
			return fmt.Errorf("%w: tag %q must not contain %q", ErrValidation, tag, TagDelimiter)
		}
	}
	return nil
}

// Insert adds a new snippet record and returns its assigned ID.
// Created and modified are both stamped with the current time.
func (d *Database) Insert(title string, tags []string, description, filePath string) (int64, error) {
	if err := validate(title, tags); err != nil {
		return 0, err
	}

	now := Now()
	res, err := d.db.Exec(
		`INSERT INTO snippets (title, tags, description, filepath, created, modified)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, strings.Join(tags, TagDelimiter), description, filePath, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert snippet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert snippet: %w", err)
	}
	return id, nil
}

// Fields holds the optional metadata mutations for Update. A nil field is
// left untouched.
type Fields struct {
	Title       *string
	Tags        []string
	Description *string
}

// Empty reports whether no field is set.
func (f Fields) Empty() bool {
	return f.Title == nil && f.Tags == nil && f.Description == nil
}

// Update mutates the supplied fields of a snippet and bumps its modified
// timestamp. When no field is set the write is skipped entirely: the
// timestamp is not bumped either.
func (d *Database) Update(id int64, fields Fields) error {
	if fields.Empty() {
		return nil
	}

	var sets []string
	var args []any

	if fields.Title != nil {
		if err := validateTitle(*fields.Title); err != nil {
			return err
		}
		sets = append(sets, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Tags != nil {
		if err := validateTags(fields.Tags); err != nil {
			return err
		}
		sets = append(sets, "tags = ?")
		args = append(args, strings.Join(fields.Tags, TagDelimiter))
	}
	if fields.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *fields.Description)
	}

	sets = append(sets, "modified = ?")
	args = append(args, Now(), id)

	res, err := d.db.Exec(
		"UPDATE snippets SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("update snippet %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update snippet %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Delete removes a snippet record.
func (d *Database) Delete(id int64) error {
	res, err := d.db.Exec("DELETE FROM snippets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete snippet %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snippet %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Get returns a single snippet by ID.
func (d *Database) Get(id int64) (Snippet, error) {
	row := d.db.QueryRow(
		`SELECT id, title, tags, description, filepath, created, modified
		 FROM snippets WHERE id = ?`, id,
	)
	s, err := scanSnippetRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snippet{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Snippet{}, fmt.Errorf("get snippet %d: %w", id, err)
	}
	return s, nil
}

// Search returns snippets matching the query, most recently modified
// first. The query is split on whitespace into lowercase terms; a record
// matches when every term appears (case-insensitively) in at least one of
// title, joined tags, or description. An empty query returns everything.
func (d *Database) Search(query string) ([]Snippet, error) {
	sel := `SELECT id, title, tags, description, filepath, created, modified FROM snippets`

	var conditions []string
	var args []any
	for _, term := range strings.Fields(strings.ToLower(query)) {
		conditions = append(conditions,
			`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`)
		pattern := "%" + sqlutil.EscapeLike(term) + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(conditions) > 0 {
		sel += " WHERE " + strings.Join(conditions, " AND ")
	}
	sel += " ORDER BY modified DESC, id DESC"

	rows, err := d.db.Query(sel, args...)
	if err != nil {
		return nil, fmt.Errorf("search snippets: %w", err)
	}
	return sqlutil.ScanRows(rows, scanSnippet)
}

func scanSnippet(rows *sql.Rows) (Snippet, error) {
	return scanSnippetRow(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnippetRow(row scanner) (Snippet, error) {
	var s Snippet
	var tags string
	if err := row.Scan(&s.ID, &s.Title, &tags, &s.Description, &s.FilePath, &s.Created, &s.Modified); err != nil {
		return Snippet{}, err
	}
	s.Tags = SplitTags(tags)
	return s, nil
}
