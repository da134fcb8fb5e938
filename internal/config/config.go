package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	// DBPath is the local key-value store file holding notes, categories,
	// and the editor draft.
	DBPath string

	// ShareBackend selects the share store: "memory" (ephemeral, the
	// default) or "sqlite" (survives restarts).
	ShareBackend string
	ShareDBPath  string
	// ShareTTL is how long a share link stays resolvable. Zero keeps
	// links forever, which also means unbounded growth.
	ShareTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config
// struct. It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will
// be loaded automatically; variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Try to find project root by looking for a .env next to go.mod
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		DBPath:       getEnv("DB_PATH", "./data/wnotes.db"),
		ShareBackend: getEnv("SHARE_BACKEND", "memory"),
		ShareDBPath:  getEnv("SHARE_DB_PATH", "./data/shares.db"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\"")
	}

	if cfg.ShareBackend != "memory" && cfg.ShareBackend != "sqlite" {
		return nil, fmt.Errorf("SHARE_BACKEND must be \"memory\" or \"sqlite\"")
	}

	ttlStr := getEnv("SHARE_TTL", "")
	if ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("SHARE_TTL must be a valid duration: %w", err)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("SHARE_TTL must not be negative")
		}
		cfg.ShareTTL = ttl
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if cfg.ShareBackend == "sqlite" {
		shareDir := filepath.Dir(cfg.ShareDBPath)
		if err := os.MkdirAll(shareDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create share data directory: %w", err)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
