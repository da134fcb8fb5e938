package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"wnotes/internal/config"
	"wnotes/internal/http"
	"wnotes/internal/kvstore"
	"wnotes/internal/notes"
	"wnotes/internal/share"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Open the local key-value store
	store, err := kvstore.OpenBolt(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()
	slog.Info("Store opened", "path", cfg.DBPath)

	// Load the note repository and category index
	repo, err := notes.NewRepository(store)
	if err != nil {
		log.Fatalf("Failed to load notes: %v", err)
	}
	cats, err := notes.NewCategoryIndex(store)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}
	manager := notes.NewManager(repo, cats)
	slog.Info("Notes loaded", "notes", repo.Len(), "categories", len(cats.Labels()))

	// Pick the share store backend
	var shareStore share.Store
	switch cfg.ShareBackend {
	case "sqlite":
		sqliteStore, err := share.OpenSQLite(cfg.ShareDBPath, cfg.ShareTTL)
		if err != nil {
			log.Fatalf("Failed to open share store: %v", err)
		}
		defer func() {
			_ = sqliteStore.Close()
		}()
		shareStore = sqliteStore
	default:
		memStore := share.NewMemoryStore(cfg.ShareTTL)
		defer memStore.Close()
		shareStore = memStore
	}
	slog.Info("Share store ready", "backend", cfg.ShareBackend, "ttl", cfg.ShareTTL)

	publisher := share.NewPublisher(shareStore)

	// Create router with dependencies
	deps := &http.Deps{
		Manager:   manager,
		Publisher: publisher,
		Store:     store,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
