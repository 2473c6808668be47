// Package writer persists rendered test classes to disk.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter implements domain.FileWriter with a write-then-rename, so the
// target path never exposes a partially written file.
type FileWriter struct{}

// New creates a FileWriter.
func New() *FileWriter { return &FileWriter{} }

// Write creates the parent directories and writes content at path.
func (w *FileWriter) Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
