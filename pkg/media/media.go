// Package media is a thin local-disk file store for uploaded images.
// Files are addressed by the relative path returned from Save, which is
// also what the API serves under /media/.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store saves and removes files below a single root directory.
type Store struct {
	root string
}

// NewStore creates a media store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Save writes src to <root>/<subdir>/<filename> and returns the path
// relative to the root.
func (s *Store) Save(subdir, filename string, src io.Reader) (string, error) {
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	rel := filepath.Join(subdir, filepath.Base(filename))
	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return rel, nil
}

// Remove deletes a previously saved file. A missing file is not an
// error; the store only guarantees the path is gone.
func (s *Store) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Clean(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}
