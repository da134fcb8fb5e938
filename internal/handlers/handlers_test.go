package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"wnotes/internal/kvstore"
	"wnotes/internal/notes"
)

// withChiParam injects a chi URL parameter for handlers served outside a
// router.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newTestManager builds a manager over an in-memory store.
func newTestManager(t *testing.T) *notes.Manager {
	t.Helper()
	store := kvstore.NewMemory()
	repo, err := notes.NewRepository(store)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	cats, err := notes.NewCategoryIndex(store)
	if err != nil {
		t.Fatalf("NewCategoryIndex() error = %v", err)
	}
	return notes.NewManager(repo, cats)
}
