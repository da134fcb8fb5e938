// Package http wires the chi router and the request middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wnotes/internal/handlers"
	"wnotes/internal/kvstore"
	"wnotes/internal/notes"
	"wnotes/internal/share"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Manager   *notes.Manager
	Publisher *share.Publisher
	Store     kvstore.Store
}

// NewRouter creates the HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(LoggerMiddleware)

	notesHandler := handlers.NewNotesHandler(deps.Manager)
	shareHandler := handlers.NewShareHandler(deps.Publisher)
	sharePage := handlers.NewSharePageHandler(deps.Publisher)
	exportHandler := handlers.NewExportHandler(deps.Manager)
	healthHandler := handlers.NewHealthHandler(deps.Store)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Method(http.MethodPost, "/share", shareHandler)
		r.Method(http.MethodGet, "/share", shareHandler)

		r.Get("/notes", notesHandler.List)
		r.Put("/notes", notesHandler.Upsert)
		r.Delete("/notes/{id}", notesHandler.Delete)
		r.Method(http.MethodGet, "/notes/export", exportHandler)

		r.Get("/categories", notesHandler.ListCategories)
		r.Delete("/categories/{name}", notesHandler.DeleteCategory)
	})

	// Public share pages
	r.Method(http.MethodGet, "/share/{id}", sharePage)

	return r
}
