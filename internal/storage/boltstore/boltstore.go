// Package boltstore persists collections in a single Bolt bucket, the
// collection name as key and the JSON-encoded collection as value. Same
// whole-document semantics as the file backend, one file on disk instead
// of one per collection.
package boltstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"

	"govt-appointments-api/internal/storage"
)

var bucket = []byte("collections")

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("boltstore: create dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("boltstore: init bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Load(name string, v any) error {
	var b []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(bucket).Get([]byte(name)); raw != nil {
			b = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("boltstore: read %s: %w", name, err)
	}
	if b == nil {
		return fmt.Errorf("boltstore: %s: %w", name, storage.ErrNotExist)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("boltstore: %s: %w: %v", name, storage.ErrCorrupt, err)
	}
	return nil
}

func (s *Store) Save(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("boltstore: encode %s: %w", name, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(name), b)
	})
	if err != nil {
		return fmt.Errorf("boltstore: write %s: %w", name, err)
	}
	return nil
}

func (s *Store) EnsureSeeded(name string, defaults any) error {
	var exists bool
	err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(bucket).Get([]byte(name)) != nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("boltstore: stat %s: %w", name, err)
	}
	if exists {
		return nil
	}
	return s.Save(name, defaults)
}
