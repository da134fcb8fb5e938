package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"wnotes/internal/contextutil"
	"wnotes/internal/notes"
	"wnotes/internal/share"
)

// SharePageHandler serves a shared note as a rendered HTML page. The body
// is treated as markdown.
type SharePageHandler struct {
	publisher *share.Publisher
	parser    goldmark.Markdown
	template  *template.Template
}

// sharePageData holds template data for the shared-note page.
type sharePageData struct {
	Title    string
	SharedOn string
	Content  template.HTML
}

// NewSharePageHandler creates a handler for the public share pages.
func NewSharePageHandler(publisher *share.Publisher) *SharePageHandler {
	tmpl := template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} &mdash; wNotes</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #0a0a0a;
      color: #e4e4e7;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(255, 255, 255, 0.1);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 2rem;
    }
    article {
      white-space: pre-wrap;
      font-size: 1.1rem;
      color: #d4d4d8;
    }
    .meta {
      color: #a1a1aa;
      font-size: 0.95rem;
      margin-top: 2rem;
      border-top: 1px solid rgba(255, 255, 255, 0.1);
      padding-top: 1rem;
      text-align: right;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
  </header>
  <article>{{.Content}}</article>
  <p class="meta">Shared on {{.SharedOn}}</p>
</body>
</html>`))

	return &SharePageHandler{
		publisher: publisher,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the shared note behind the id URL parameter.
func (h *SharePageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	note, err := h.publisher.Resolve(ctx, id)
	if errors.Is(err, share.ErrNotFound) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load shared note", "share_id", id, "error", err)
		http.Error(w, "failed to load note", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.parser.Convert([]byte(note.Content), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render shared note", "share_id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	title := note.Title
	if title == "" {
		title = notes.UntitledTitle
	}
	data := sharePageData{
		Title:    title,
		SharedOn: note.CreatedAt.Format("January 2, 2006"),
		Content:  template.HTML(buf.String()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute share template", "share_id", id, "error", err)
		http.Error(w, fmt.Sprintf("failed to render note: %v", err), http.StatusInternalServerError)
	}
}
