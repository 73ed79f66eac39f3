// Package store manages snippet content files on disk: creating a file
// location for a new snippet, importing existing files, and reading or
// deleting snippet bodies. Metadata lives in the index, not here; the two
// are linked only by the file path.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Extension is the file extension for snippet content files.
const Extension = ".md"

// ErrNotFound indicates the requested content file does not exist.
var ErrNotFound = errors.New("snippet file not found")

// Store manages the files/ directory of a snippet home.
type Store struct {
	dir string
}

// New creates a Store rooted at the given files directory.
func New(filesDir string) *Store {
	return &Store{dir: filesDir}
}

// Dir returns the files directory.
func (s *Store) Dir() string {
	return s.dir
}

// CreateFile derives a filesystem-safe filename from title and reserves a
// non-colliding path for it. The file itself is not written; the caller
// fills it in (normally through the editor).
func (s *Store) CreateFile(title string) string {
	base := Filename(title)
	path := filepath.Join(s.dir, base+Extension)

	for counter := 1; exists(path); counter++ {
		path = filepath.Join(s.dir, fmt.Sprintf("%s_%d%s", base, counter, Extension))
	}
	return path
}

// ImportFile copies the file at src into the store, resolving name
// collisions with a numeric suffix before the extension. Returns the
// destination path.
func (s *Store) ImportFile(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	name := filepath.Base(src)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	dst := filepath.Join(s.dir, name)
	for counter := 1; exists(dst); counter++ {
		dst = filepath.Join(s.dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	return dst, nil
}

// Read returns the bytes of a snippet content file.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return data, nil
}

// Delete removes a snippet content file.
func (s *Store) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	return nil
}

// Filename derives a filesystem-safe base name (no extension) from a
// title: lower-cased, with every rune that is not a letter, digit, '-' or
// '_' replaced by '_'.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
