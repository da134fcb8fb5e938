package share

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a durable Store so shared links survive a restart, the
// substitution the pluggable abstraction exists for. A positive TTL
// filters expired rows on read and deletes them opportunistically.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenSQLite opens the database at path, runs migrations, and returns the
// store. ttl <= 0 keeps rows forever.
func OpenSQLite(path string, ttl time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open share db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping share db: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, ttl: ttl}, nil
}

// migrate creates the shared_notes table. Idempotent.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS shared_notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("migrate share db: %w", err)
	}
	return nil
}

// Put stores the snapshot under id.
func (s *SQLiteStore) Put(ctx context.Context, id string, note SharedNote) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shared_notes (id, title, content, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET title = excluded.title, content = excluded.content`,
		id, note.Title, note.Content, note.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store shared note: %w", err)
	}
	return nil
}

// Get returns the snapshot for id. Expired rows count as not found.
func (s *SQLiteStore) Get(ctx context.Context, id string) (SharedNote, error) {
	var note SharedNote
	var createdAtStr string

	err := s.db.QueryRowContext(ctx,
		"SELECT title, content, created_at FROM shared_notes WHERE id = ?", id,
	).Scan(&note.Title, &note.Content, &createdAtStr)
	if err == sql.ErrNoRows {
		return SharedNote{}, ErrNotFound
	}
	if err != nil {
		return SharedNote{}, fmt.Errorf("query shared note: %w", err)
	}

	note.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return SharedNote{}, fmt.Errorf("parse created_at: %w", err)
	}

	if s.ttl > 0 && time.Since(note.CreatedAt) > s.ttl {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM shared_notes WHERE id = ?", id)
		return SharedNote{}, ErrNotFound
	}
	return note, nil
}

// Sweep deletes all expired rows. No-op without a TTL.
func (s *SQLiteStore) Sweep(ctx context.Context) error {
	if s.ttl <= 0 {
		return nil
	}
	cutoff := time.Now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, "DELETE FROM shared_notes WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("sweep shared notes: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
