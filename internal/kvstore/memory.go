package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store. It keeps the JSON encoding of every value
// so reads see a snapshot, not a shared pointer. Used by tests and by
// ephemeral runs that don't want a database file.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get unmarshals the value stored under key into out.
func (s *Memory) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	return true, nil
}

// Set marshals v and stores it under key.
func (s *Memory) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

// Delete removes key.
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close() error {
	return nil
}
