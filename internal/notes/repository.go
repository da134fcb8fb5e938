package notes

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"wnotes/internal/kvstore"
)

// notesKey is the store slot holding the full note collection.
const notesKey = "my-notes"

// Repository is the in-memory list of all notes, newest first, synchronized
// to the key-value store. Every mutation rewrites the whole persisted
// collection; there is no incremental diffing.
type Repository struct {
	mu    sync.RWMutex
	store kvstore.Store
	notes []Note
}

// NewRepository creates a repository over the given store and loads any
// previously persisted collection.
func NewRepository(store kvstore.Store) (*Repository, error) {
	r := &Repository{store: store}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load replaces the in-memory collection with the persisted one. A missing
// slot leaves the repository empty.
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var loaded []Note
	found, err := r.store.Get(notesKey, &loaded)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	if !found {
		loaded = nil
	}
	r.notes = loaded
	return nil
}

// Upsert writes note into the repository. An existing id is replaced in
// place, preserving list position and CreatedAt; a new note is prepended.
// An empty id gets a fresh UUID. UpdatedAt is always set to now, CreatedAt
// only on first persistence. The stored note is returned.
func (r *Repository) Upsert(note Note) (Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	note.UpdatedAt = now

	if note.ID != "" {
		for i, existing := range r.notes {
			if existing.ID == note.ID {
				note.CreatedAt = existing.CreatedAt
				r.notes[i] = note
				if err := r.persist(); err != nil {
					r.notes[i] = existing
					return Note{}, err
				}
				return note, nil
			}
		}
	}

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = now

	r.notes = append([]Note{note}, r.notes...)
	if err := r.persist(); err != nil {
		r.notes = r.notes[1:]
		return Note{}, err
	}
	return note, nil
}

// Delete removes the note with the given id. Unknown ids are a no-op.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notes {
		if n.ID == id {
			old := r.notes
			r.notes = append(append([]Note{}, old[:i]...), old[i+1:]...)
			if err := r.persist(); err != nil {
				r.notes = old
				return err
			}
			return nil
		}
	}
	return nil
}

// Get returns the note with the given id, or ErrNotFound.
func (r *Repository) Get(id string) (Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, ErrNotFound
}

// All returns a copy of the collection in repository (newest-first) order.
func (r *Repository) All() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Note{}, r.notes...)
}

// FilterByTag returns the notes whose tag equals the given label, preserving
// repository order.
func (r *Repository) FilterByTag(tag string) []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Note
	for _, n := range r.notes {
		if n.Tag == tag {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of notes.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// deleteByTag removes every note whose tag equals label. Caller holds no
// lock; used by Manager.DeleteCategory for the cascade.
func (r *Repository) deleteByTag(label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.notes
	kept := r.notes[:0:0]
	for _, n := range r.notes {
		if n.Tag != label {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(old) {
		return nil
	}
	r.notes = kept
	if err := r.persist(); err != nil {
		r.notes = old
		return err
	}
	return nil
}

// persist rewrites the full collection. Caller must hold the write lock.
func (r *Repository) persist() error {
	if err := r.store.Set(notesKey, r.notes); err != nil {
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}
