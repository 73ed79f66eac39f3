package index

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "snippets.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndGet(t *testing.T) {
	db := openTestDB(t)

	id, err := db.Insert("Python Files IO", []string{"python", "files"}, "reading and writing files", "files/python_files_io.md")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	s, err := db.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if s.ID != id {
		t.Errorf("ID = %d, want %d", s.ID, id)
	}
	if s.Title != "Python Files IO" {
		t.Errorf("Title = %q", s.Title)
	}
	if !reflect.DeepEqual(s.Tags, []string{"python", "files"}) {
		t.Errorf("Tags = %v", s.Tags)
	}
	if s.Description != "reading and writing files" {
		t.Errorf("Description = %q", s.Description)
	}
	if s.FilePath != "files/python_files_io.md" {
		t.Errorf("FilePath = %q", s.FilePath)
	}
	if s.Created == "" || s.Created != s.Modified {
		t.Errorf("Created = %q, Modified = %q, want equal and non-empty", s.Created, s.Modified)
	}
}

func TestInsertValidation(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name  string
		title string
		tags  []string
	}{
		{"empty title", "", []string{"x"}},
		{"whitespace title", "   ", []string{"x"}},
		{"no tags", "Title", nil},
		{"blank tag", "Title", []string{" "}},
		{"tag with delimiter", "Title", []string{"a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Insert(tt.title, tt.tags, "", "f.md")
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSingleField(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.Insert("Old Title", []string{"x"}, "desc", "f.md")

	before, _ := db.Get(id)

	newTitle := "New Title"
	if err := db.Update(id, Fields{Title: &newTitle}); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, err := db.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Title != "New Title" {
		t.Errorf("Title = %q, want New Title", after.Title)
	}
	if !reflect.DeepEqual(after.Tags, before.Tags) {
		t.Errorf("Tags changed: %v", after.Tags)
	}
	if after.Description != before.Description {
		t.Errorf("Description changed: %q", after.Description)
	}
	if after.Created != before.Created {
		t.Errorf("Created changed: %q", after.Created)
	}
	if after.Modified < before.Modified {
		t.Errorf("Modified went backwards: %q < %q", after.Modified, before.Modified)
	}
}

func TestUpdateNoFieldsSkipsWrite(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.Insert("Title", []string{"x"}, "", "f.md")
	before, _ := db.Get(id)

	if err := db.Update(id, Fields{}); err != nil {
		t.Fatalf("empty update: %v", err)
	}

	after, _ := db.Get(id)
	if after.Modified != before.Modified {
		t.Errorf("empty update bumped modified: %q -> %q", before.Modified, after.Modified)
	}
}

func TestUpdateValidation(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.Insert("Title", []string{"x"}, "", "f.md")

	empty := ""
	if err := db.Update(id, Fields{Title: &empty}); !errors.Is(err, ErrValidation) {
		t.Errorf("empty title update: expected ErrValidation, got %v", err)
	}
	if err := db.Update(id, Fields{Tags: []string{"a,b"}}); !errors.Is(err, ErrValidation) {
		t.Errorf("delimiter tag update: expected ErrValidation, got %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	db := openTestDB(t)
	title := "T"
	if err := db.Update(99, Fields{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.Insert("Title", []string{"x"}, "", "f.md")

	if err := db.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Get(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := db.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	db := openTestDB(t)
	db.Insert("One", []string{"a"}, "", "1.md")
	db.Insert("Two", []string{"b"}, "", "2.md")
	db.Insert("Three", []string{"c"}, "", "3.md")

	results, err := db.Search("")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// Most recently touched first; equal timestamps fall back to id desc.
	if results[0].Title != "Three" || results[2].Title != "One" {
		t.Errorf("order = %s, %s, %s", results[0].Title, results[1].Title, results[2].Title)
	}
}

func TestSearchMultiTermAND(t *testing.T) {
	db := openTestDB(t)
	db.Insert("Python Files IO", []string{"python", "io"}, "reading files", "1.md")
	db.Insert("Go Channels", []string{"go", "concurrency"}, "", "2.md")

	tests := []struct {
		query string
		want  []string
	}{
		{"python files", []string{"Python Files IO"}},
		{"python network", nil},
		{"PYTHON", []string{"Python Files IO"}},
		{"concurrency", []string{"Go Channels"}},
		{"reading io", []string{"Python Files IO"}}, // desc OR tags per term
		{"go python", nil},                          // terms must all match one record
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := db.Search(tt.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			var titles []string
			for _, s := range results {
				titles = append(titles, s.Title)
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, titles, tt.want)
			}
		})
	}
}

func TestSearchAcrossFields(t *testing.T) {
	db := openTestDB(t)
	db.Insert("Foo", []string{"x"}, "", "a.md")
	db.Insert("Bar", []string{"x", "y"}, "mentions foo", "b.md")

	results, err := db.Search("foo")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Most recently inserted first.
	if results[0].Title != "Bar" || results[1].Title != "Foo" {
		t.Errorf("order = %s, %s", results[0].Title, results[1].Title)
	}
}

func TestSearchEmptyDescriptionNeverMatches(t *testing.T) {
	db := openTestDB(t)
	db.Insert("Alpha", []string{"x"}, "", "a.md")

	results, err := db.Search("zzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestSearchEscapesLikeMetacharacters(t *testing.T) {
	db := openTestDB(t)
	db.Insert("Percent 100% done", []string{"x"}, "", "a.md")
	db.Insert("Plain", []string{"x"}, "", "b.md")

	results, err := db.Search("100%")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Percent 100% done" {
		t.Errorf("got %v, want only the percent record", results)
	}

	// "_" must match literally, not as a single-char wildcard.
	results, err = db.Search("pl_in")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("wildcard leak: %v", results)
	}
}

func TestSearchModifiedOrdering(t *testing.T) {
	db := openTestDB(t)
	first, _ := db.Insert("First", []string{"x"}, "", "1.md")
	db.Insert("Second", []string{"x"}, "", "2.md")

	// Touching the older record moves it to the front.
	title := "First (updated)"
	if err := db.Update(first, Fields{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}

	results, err := db.Search("")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if results[0].Title != "First (updated)" {
		t.Errorf("first result = %q, want the updated record", results[0].Title)
	}
}
