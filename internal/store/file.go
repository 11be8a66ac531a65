package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// FileStore persists each key as a JSON file under a single base directory.
type FileStore struct {
	basePath string
}

// NewFileStore constructs a FileStore rooted at the provided directory. If
// basePath is empty, it falls back to ~/.dayline (or another location
// determined by ResolveBasePath).
func NewFileStore(basePath string) (*FileStore, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &FileStore{basePath: abs}, nil
}

// BasePath returns the root directory storing all state blobs.
func (s *FileStore) BasePath() string {
	return s.basePath
}

// Read loads the blob stored under key, or ErrKeyNotFound when absent.
func (s *FileStore) Read(key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}
	return data, nil
}

// Write stores the blob under key. The file only ever holds either the old
// or the new contents: data lands in a temp file first and is renamed over
// the target.
func (s *FileStore) Write(key string, data []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	temp, err := os.CreateTemp(filepath.Dir(path), "dayline-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(temp.Name(), filePermissions); err != nil {
		return err
	}
	return os.Rename(temp.Name(), path)
}

// Delete removes the blob under key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) keyPath(key string) (string, error) {
	if s == nil {
		return "", errors.New("store.FileStore is nil")
	}
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.basePath, key+".json"), nil
}
