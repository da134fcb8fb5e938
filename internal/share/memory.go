package share

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps shared notes in a process-wide map. With a zero TTL
// entries live until the process exits; a positive TTL enables expiry on
// read plus a background sweep.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[string]SharedNote
	ttl   time.Duration

	janitor *time.Ticker
	done    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a memory store. ttl <= 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		notes: make(map[string]SharedNote),
		ttl:   ttl,
		done:  make(chan struct{}),
	}
	if ttl > 0 {
		s.janitor = time.NewTicker(ttl)
		go s.sweep()
	}
	return s
}

// Put stores the snapshot under id.
func (s *MemoryStore) Put(_ context.Context, id string, note SharedNote) error {
	s.mu.Lock()
	s.notes[id] = note
	s.mu.Unlock()
	return nil
}

// Get returns the snapshot for id. Expired entries count as not found.
func (s *MemoryStore) Get(_ context.Context, id string) (SharedNote, error) {
	s.mu.RLock()
	note, ok := s.notes[id]
	s.mu.RUnlock()
	if !ok || s.expired(note, time.Now()) {
		return SharedNote{}, ErrNotFound
	}
	return note, nil
}

// Len returns the number of stored entries, including not-yet-swept
// expired ones.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Close stops the eviction sweep, if any.
func (s *MemoryStore) Close() {
	s.once.Do(func() {
		if s.janitor != nil {
			s.janitor.Stop()
		}
		close(s.done)
	})
}

func (s *MemoryStore) expired(note SharedNote, now time.Time) bool {
	return s.ttl > 0 && now.Sub(note.CreatedAt) > s.ttl
}

func (s *MemoryStore) sweep() {
	for {
		select {
		case <-s.done:
			return
		case now := <-s.janitor.C:
			s.mu.Lock()
			for id, note := range s.notes {
				if s.expired(note, now) {
					delete(s.notes, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
