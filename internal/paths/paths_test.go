package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name       string
		explicit   string
		configured string
		wantRoot   string
	}{
		{"explicit flag wins", "/flag/dir", "/config/dir", "/flag/dir"},
		{"config when no flag", "", "/config/dir", "/config/dir"},
		{"home default", "", "", filepath.Join(home, DefaultDirName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Resolve(tt.explicit, tt.configured)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if layout.Root != tt.wantRoot {
				t.Errorf("Root = %q, want %q", layout.Root, tt.wantRoot)
			}
			if want := filepath.Join(tt.wantRoot, FilesDirName); layout.FilesDir != want {
				t.Errorf("FilesDir = %q, want %q", layout.FilesDir, want)
			}
			if want := filepath.Join(tt.wantRoot, DatabaseFileName); layout.Database != want {
				t.Errorf("Database = %q, want %q", layout.Database, want)
			}
		})
	}
}

func TestEnsure(t *testing.T) {
	layout := NewLayout(filepath.Join(t.TempDir(), "snips"))
	if err := layout.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	info, err := os.Stat(layout.FilesDir)
	if err != nil {
		t.Fatalf("stat files dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", layout.FilesDir)
	}

	// Idempotent on an existing layout.
	if err := layout.Ensure(); err != nil {
		t.Errorf("Ensure() on existing layout error = %v", err)
	}
}
