package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wnotes/internal/contextutil"
	"wnotes/internal/share"
)

// ShareHandler implements the share API: POST creates a share link for a
// title/content snapshot, GET resolves one by the id query parameter.
type ShareHandler struct {
	publisher *share.Publisher
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(publisher *share.Publisher) *ShareHandler {
	return &ShareHandler{publisher: publisher}
}

// shareRequest is the creation payload.
type shareRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ServeHTTP dispatches on method.
func (h *ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.resolve(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ShareHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.publisher.Create(ctx, req.Title, req.Content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create share link", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to share note")
		return
	}

	logger.InfoContext(ctx, "share link created", "share_id", link.ShareID)
	writeJSON(w, http.StatusOK, link)
}

func (h *ShareHandler) resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "No share ID provided")
		return
	}

	note, err := h.publisher.Resolve(ctx, id)
	if errors.Is(err, share.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve share link", "share_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}
