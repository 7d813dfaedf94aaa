// Package repo exposes typed in-memory operations over the four persisted
// collections. Each call re-reads the backing document, operates on the
// decoded slice, and (for mutations) rewrites the whole document.
package repo

import (
	"errors"
	"fmt"

	"govt-appointments-api/internal/model"
	"govt-appointments-api/internal/storage"
)

var ErrNotFound = errors.New("not found")

// Collection binds a document name to its record type. The id function
// extracts the comparable identifier used by FindByID and UpdateAt.
type Collection[T any, ID comparable] struct {
	adapter storage.Adapter
	name    string
	id      func(T) ID
}

func (c *Collection[T, ID]) List() ([]T, error) {
	var out []T
	if err := c.adapter.Load(c.name, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T, ID]) FindByID(id ID) (T, error) {
	var zero T
	items, err := c.List()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if c.id(it) == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %v: %w", c.name, id, ErrNotFound)
}

// Filter returns the records matching pred, preserving stored order.
func (c *Collection[T, ID]) Filter(pred func(T) bool) ([]T, error) {
	items, err := c.List()
	if err != nil {
		return nil, err
	}
	var out []T
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *Collection[T, ID]) Append(rec T) error {
	items, err := c.List()
	if err != nil {
		return err
	}
	return c.adapter.Save(c.name, append(items, rec))
}

// UpdateAt locates the record by linear scan, applies mutate in place and
// rewrites the collection. The whole call is read-modify-write with no
// locking; racing writers lose updates (last write wins).
func (c *Collection[T, ID]) UpdateAt(id ID, mutate func(*T)) (T, error) {
	var zero T
	items, err := c.List()
	if err != nil {
		return zero, err
	}
	for i := range items {
		if c.id(items[i]) == id {
			mutate(&items[i])
			if err := c.adapter.Save(c.name, items); err != nil {
				return zero, err
			}
			return items[i], nil
		}
	}
	return zero, fmt.Errorf("%s %v: %w", c.name, id, ErrNotFound)
}

// Repo groups the four collections over one storage adapter.
type Repo struct {
	Users        *Collection[model.User, int]
	Services     *Collection[model.Service, int]
	Appointments *Collection[model.Appointment, string]
	Feedback     *Collection[model.Feedback, string]
}

func New(adapter storage.Adapter) (*Repo, error) {
	if err := seed(adapter); err != nil {
		return nil, err
	}
	return &Repo{
		Users: &Collection[model.User, int]{
			adapter: adapter, name: "users",
			id: func(u model.User) int { return u.ID },
		},
		Services: &Collection[model.Service, int]{
			adapter: adapter, name: "services",
			id: func(s model.Service) int { return s.ID },
		},
		Appointments: &Collection[model.Appointment, string]{
			adapter: adapter, name: "appointments",
			id: func(a model.Appointment) string { return a.ID },
		},
		Feedback: &Collection[model.Feedback, string]{
			adapter: adapter, name: "feedback",
			id: func(f model.Feedback) string { return f.ID },
		},
	}, nil
}
