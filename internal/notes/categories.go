package notes

import (
	"fmt"
	"slices"
	"sync"

	"wnotes/internal/kvstore"
)

// categoriesKey is the store slot holding the category label list.
const categoriesKey = "categories"

// CategoryIndex is the persisted set of known tag labels, in first-seen
// order. A label can exist with zero notes; labels are never derived from
// the repository alone.
type CategoryIndex struct {
	mu     sync.RWMutex
	store  kvstore.Store
	labels []string
}

// NewCategoryIndex creates an index over the given store and loads any
// previously persisted labels.
func NewCategoryIndex(store kvstore.Store) (*CategoryIndex, error) {
	idx := &CategoryIndex{store: store}
	if err := idx.Load(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Load replaces the in-memory label list with the persisted one.
func (c *CategoryIndex) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var loaded []string
	found, err := c.store.Get(categoriesKey, &loaded)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if !found {
		loaded = nil
	}
	c.labels = loaded
	return nil
}

// Add appends a label unless it is already present or empty. Idempotent.
func (c *CategoryIndex) Add(label string) error {
	if label == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Contains(c.labels, label) {
		return nil
	}
	c.labels = append(c.labels, label)
	if err := c.persist(); err != nil {
		c.labels = c.labels[:len(c.labels)-1]
		return err
	}
	return nil
}

// Remove drops a label from the index. Unknown labels are a no-op. The
// note cascade belongs to Manager.DeleteCategory, not here.
func (c *CategoryIndex) Remove(label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.Index(c.labels, label)
	if i < 0 {
		return nil
	}
	old := c.labels
	c.labels = append(append([]string{}, old[:i]...), old[i+1:]...)
	if err := c.persist(); err != nil {
		c.labels = old
		return err
	}
	return nil
}

// Contains reports whether label is in the index.
func (c *CategoryIndex) Contains(label string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.labels, label)
}

// Labels returns a copy of the label list in first-seen order.
func (c *CategoryIndex) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.labels...)
}

// persist rewrites the label list. Caller must hold the write lock.
func (c *CategoryIndex) persist() error {
	if err := c.store.Set(categoriesKey, c.labels); err != nil {
		return fmt.Errorf("persist categories: %w", err)
	}
	return nil
}
