// Package paths centralizes the on-disk layout of a snippet home:
// the root directory, the files/ subdirectory holding one markdown file
// per snippet, and the SQLite record store.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the snippet home created under $HOME when no
	// directory is configured.
	DefaultDirName = ".snippets"

	// FilesDirName is the subdirectory holding snippet content files.
	FilesDirName = "files"

	// DatabaseFileName is the SQLite record store file.
	DatabaseFileName = "snippets.db"
)

// Layout holds the resolved paths for a snippet home.
type Layout struct {
	Root     string // snippet home directory
	FilesDir string // Root/files
	Database string // Root/snippets.db
}

// Resolve computes the layout with precedence:
//  1. explicit --dir flag
//  2. snippets_dir from config
//  3. ~/.snippets
func Resolve(explicitDir, configuredDir string) (Layout, error) {
	root := explicitDir
	if root == "" {
		root = configuredDir
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Layout{}, fmt.Errorf("resolve home directory: %w", err)
		}
		root = filepath.Join(home, DefaultDirName)
	}
	return NewLayout(root), nil
}

// NewLayout builds a Layout rooted at the given directory.
func NewLayout(root string) Layout {
	return Layout{
		Root:     root,
		FilesDir: filepath.Join(root, FilesDirName),
		Database: filepath.Join(root, DatabaseFileName),
	}
}

// Ensure creates the root and files directories if they do not exist.
func (l Layout) Ensure() error {
	if err := os.MkdirAll(l.FilesDir, 0o755); err != nil {
		return fmt.Errorf("create snippets directory: %w", err)
	}
	return nil
}
