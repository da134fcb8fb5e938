package share

import (
	"context"
	"time"
)

// Link is the result of publishing a note snapshot.
type Link struct {
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
}

// Publisher creates and resolves share links over a Store.
type Publisher struct {
	store Store
}

// NewPublisher creates a publisher over the given store.
func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Create stores a snapshot of title and content and returns its link.
// Concurrent creations are independent; each gets a fresh token.
func (p *Publisher) Create(ctx context.Context, title, content string) (Link, error) {
	id, err := NewID()
	if err != nil {
		return Link{}, err
	}

	err = p.store.Put(ctx, id, SharedNote{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Link{}, err
	}

	return Link{ShareID: id, ShareURL: "/share/" + id}, nil
}

// Resolve returns the snapshot behind id, or ErrNotFound.
func (p *Publisher) Resolve(ctx context.Context, id string) (SharedNote, error) {
	return p.store.Get(ctx, id)
}
