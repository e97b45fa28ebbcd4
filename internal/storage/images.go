package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images under a single local directory.
// Stored names are server-generated UUIDs; the client filename contributes
// only its extension, so client input never becomes part of a path.
type ImageStore struct {
	dir string
}

// NewImageStore creates the upload directory if needed and returns a store
// rooted at it.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes the file contents and returns the path it was stored under.
func (s *ImageStore) Save(r io.Reader, origName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(filepath.Base(origName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored image file. An empty path or a file that is already
// gone is not an error.
func (s *ImageStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
