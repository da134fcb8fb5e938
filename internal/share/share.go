// Package share implements the share publisher: it hands out short opaque
// tokens for read-only snapshots of a note's title and body. The backing
// store is pluggable; the default in-memory store is ephemeral, with
// optional TTL eviction bounding its growth.
package share

import (
	"context"
	"errors"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks wnotes/internal/share Store

// ErrNotFound is returned when a share id is unknown or expired.
var ErrNotFound = errors.New("shared note not found")

// SharedNote is the stored snapshot behind a share token.
type SharedNote struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists shared-note snapshots by id.
type Store interface {
	// Put stores the snapshot under id.
	Put(ctx context.Context, id string, note SharedNote) error
	// Get returns the snapshot for id, or ErrNotFound.
	Get(ctx context.Context, id string) (SharedNote, error)
}
