// Package storage persists uploaded file blobs outside the database.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store saves and removes uploaded file content. The database keeps only
// the returned path.
type Store interface {
	Save(data []byte, name string) (path string, err error)
	Delete(path string) error
	Exists(path string) bool
}

// DiskStore implements Store on the local filesystem under a single
// uploads directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(data []byte, name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return path, nil
}

func (s *DiskStore) Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}

func (s *DiskStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
