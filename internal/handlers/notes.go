package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"wnotes/internal/contextutil"
	"wnotes/internal/notes"
)

// NotesHandler exposes the note repository and category index over JSON.
type NotesHandler struct {
	mgr *notes.Manager
}

// NewNotesHandler creates a NotesHandler.
func NewNotesHandler(mgr *notes.Manager) *NotesHandler {
	return &NotesHandler{mgr: mgr}
}

// List returns the collection, newest first, optionally filtered by tag.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	var list []notes.Note
	if tag := r.URL.Query().Get("tag"); tag != "" {
		list = h.mgr.Repository().FilterByTag(tag)
	} else {
		list = h.mgr.Repository().All()
	}
	if list == nil {
		list = []notes.Note{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Upsert persists the posted note, creating it when the id is empty or
// unknown, and returns the stored record.
func (h *NotesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var note notes.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if note.Title == "" && note.Content == "" {
		writeError(w, http.StatusBadRequest, "empty note")
		return
	}
	if note.Title == "" {
		note.Title = notes.UntitledTitle
	}

	saved, err := h.mgr.Upsert(note)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save note", "note_id", note.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save note")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Delete removes a note by id. Unknown ids still return 204; delete is a
// no-op there, not an error.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.mgr.DeleteNote(id); err != nil {
		logger.ErrorContext(ctx, "failed to delete note", "note_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories returns every category label with its derived note count.
func (h *NotesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mgr.ListWithCounts())
}

// DeleteCategory removes a category and every note tagged with it. The
// destructive cascade requires confirm=true; the UI asks the user first and
// passes the flag through.
func (h *NotesHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	label, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || label == "" {
		writeError(w, http.StatusBadRequest, "invalid category name")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	err = h.mgr.DeleteCategory(label, confirmed)
	if errors.Is(err, notes.ErrConfirmationRequired) {
		writeError(w, http.StatusBadRequest, "confirmation required: this deletes every note in the category")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete category", "category", label, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	logger.InfoContext(ctx, "category deleted", "category", label)
	w.WriteHeader(http.StatusNoContent)
}
