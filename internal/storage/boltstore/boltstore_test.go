package boltstore_test

import (
	"errors"
	"path/filepath"
	"testing"

	"govt-appointments-api/internal/storage"
	"govt-appointments-api/internal/storage/boltstore"
)

func open(t *testing.T) *boltstore.Store {
	t.Helper()
	s, err := boltstore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissing(t *testing.T) {
	s := open(t)
	var out []string
	err := s.Load("nope", &out)
	if !errors.Is(err, storage.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := open(t)
	type rec struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	in := []rec{{1, "one"}, {2, "two"}}
	if err := s.Save("recs", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	var out []rec
	if err := s.Load("recs", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[1].Name != "two" {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestEnsureSeededIdempotent(t *testing.T) {
	s := open(t)
	if err := s.EnsureSeeded("users", []string{"seed"}); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := s.Save("users", []string{"real"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.EnsureSeeded("users", []string{"seed"}); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var out []string
	if err := s.Load("users", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != "real" {
		t.Errorf("seeding overwrote existing data: %v", out)
	}
}
