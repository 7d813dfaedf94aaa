// Package filestore persists each collection as a pretty-printed JSON file
// under a data directory, one file per collection.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"govt-appointments-api/internal/storage"
)

type Store struct {
	dir string
}

// New creates the data directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) Load(name string, v any) error {
	b, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filestore: %s: %w", name, storage.ErrNotExist)
	}
	if err != nil {
		return fmt.Errorf("filestore: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("filestore: %s: %w: %v", name, storage.ErrCorrupt, err)
	}
	return nil
}

func (s *Store) Save(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), b, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	return nil
}

func (s *Store) EnsureSeeded(name string, defaults any) error {
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filestore: stat %s: %w", name, err)
	}
	return s.Save(name, defaults)
}
