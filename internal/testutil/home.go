// Package testutil provides helpers for tests that need a populated
// snippet home on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jwhitaker/snip/internal/index"
	"github.com/jwhitaker/snip/internal/paths"
	"github.com/jwhitaker/snip/internal/store"
)

// Home is a temporary snippet home with an open index and content store.
type Home struct {
	t      *testing.T
	Layout paths.Layout
	DB     *index.Database
	Files  *store.Store
}

// NewHome creates a snippet home under t.TempDir() and opens its index.
// Cleanup is registered with the test.
func NewHome(t *testing.T) *Home {
	t.Helper()

	layout := paths.NewLayout(t.TempDir())
	if err := layout.Ensure(); err != nil {
		t.Fatalf("ensure layout: %v", err)
	}

	db, err := index.Open(layout.Database)
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &Home{
		t:      t,
		Layout: layout,
		DB:     db,
		Files:  store.New(layout.FilesDir),
	}
}

// WriteFile writes a content file under files/ and returns its path.
func (h *Home) WriteFile(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.Layout.FilesDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		h.t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// MustInsert inserts a record and fails the test on error.
func (h *Home) MustInsert(title string, tags []string, description, filePath string) int64 {
	h.t.Helper()
	id, err := h.DB.Insert(title, tags, description, filePath)
	if err != nil {
		h.t.Fatalf("insert %q: %v", title, err)
	}
	return id
}

// AssertFileExists fails the test if the file does not exist.
func (h *Home) AssertFileExists(path string) {
	h.t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		h.t.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (h *Home) AssertFileNotExists(path string) {
	h.t.Helper()
	if _, err := os.Stat(path); err == nil {
		h.t.Errorf("expected file to not exist: %s", path)
	}
}
