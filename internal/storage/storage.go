// Package storage defines the whole-document persistence boundary. Every
// collection lives in a single named document that is read and rewritten
// wholesale on each operation; there is no partial update and no locking,
// so concurrent writers race and the last write wins.
package storage

import "errors"

var (
	// ErrNotExist reports that the named document has never been written.
	ErrNotExist = errors.New("document does not exist")
	// ErrCorrupt reports that the stored bytes are not well-formed.
	ErrCorrupt = errors.New("corrupt store")
)

// Adapter loads and saves whole collections keyed by document name.
type Adapter interface {
	// Load decodes the named document into v. Returns ErrNotExist if the
	// document was never seeded, or an error wrapping ErrCorrupt if the
	// content cannot be decoded.
	Load(name string, v any) error
	// Save serializes v and overwrites the named document.
	Save(name string, v any) error
	// EnsureSeeded writes defaults only if the document does not yet
	// exist. Idempotent across process restarts.
	EnsureSeeded(name string, defaults any) error
}
