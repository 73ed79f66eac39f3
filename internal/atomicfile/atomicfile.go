// Package atomicfile writes files via a temp-file-and-rename dance so a
// crash mid-write never leaves a torn file behind.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path atomically: the bytes go to a temporary
// file in the same directory, which is then renamed over path. A perm of 0
// keeps the existing file's mode, or 0644 for a new file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := writeTemp(path, data, resolveMode(path, perm))
	if err != nil {
		return err
	}
	if err := replace(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func resolveMode(path string, perm os.FileMode) os.FileMode {
	if perm != 0 {
		return perm
	}
	if st, err := os.Stat(path); err == nil {
		return st.Mode()
	}
	return 0o644
}

// writeTemp writes data to a fresh temp file next to path and returns its
// name. On failure the temp file is removed.
func writeTemp(path string, data []byte, perm os.FileMode) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	// Best-effort; some filesystems reject chmod on open handles.
	_ = f.Chmod(perm)

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return name, nil
}

// replace renames tmp over path. Windows cannot rename onto an existing
// file, so retry once after removing the target.
func replace(tmp, path string) error {
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(path)
		return os.Rename(tmp, path)
	}
	return nil
}
