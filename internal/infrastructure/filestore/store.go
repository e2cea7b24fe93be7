// Package filestore commits rendered invoices to disk atomically.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store writes through an afero filesystem: a temp file in the target directory,
// then a rename into place. A failed commit leaves nothing at the target.
type Store struct {
	fs afero.Fs
}

// New builds a store over fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS builds a store over the real filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Commit writes data to path, creating parent directories. Returns the cleaned path.
func (s *Store) Commit(ctx context.Context, path string, data []byte) (string, error) {
	if path == "" {
		return "", fmt.Errorf("filestore: empty path")
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("filestore: %w", err)
	}
	path = filepath.Clean(path)
	if info, err := s.fs.Stat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("filestore: %s is a directory", path)
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("filestore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: close %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpName, 0o644); err != nil && !os.IsNotExist(err) {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: chmod %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("filestore: rename into %s: %w", path, err)
	}
	return path, nil
}
