package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"wnotes/internal/contextutil"
	"wnotes/internal/export"
	"wnotes/internal/notes"
)

// ExportHandler renders one note or the whole collection as a downloadable
// file in the requested format.
type ExportHandler struct {
	mgr *notes.Manager
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(mgr *notes.Manager) *ExportHandler {
	return &ExportHandler{mgr: mgr}
}

// ServeHTTP handles GET with format and optional id query parameters.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var list []notes.Note
	if id := r.URL.Query().Get("id"); id != "" {
		note, err := h.mgr.Repository().Get(id)
		if errors.Is(err, notes.ErrNotFound) {
			writeError(w, http.StatusNotFound, "note not found")
			return
		}
		list = []notes.Note{note}
	} else {
		list = h.mgr.Repository().All()
	}
	if len(list) == 0 {
		writeError(w, http.StatusNotFound, "no notes to export")
		return
	}

	file, err := export.Export(list, format)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate export", "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate document")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
