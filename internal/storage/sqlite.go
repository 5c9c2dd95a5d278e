package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cavcrosby/vershift/internal/logging"
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
	log    *logging.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS comparison_history (
	id TEXT PRIMARY KEY,
	subject TEXT NOT NULL,
	grammar TEXT NOT NULL,
	from_version TEXT NOT NULL,
	to_version TEXT NOT NULL,
	kinds TEXT NOT NULL,
	greatest TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_comparison_history_created_at
	ON comparison_history(created_at DESC);
`

// NewSQLiteStorage creates a new SQLite storage instance. It opens the
// database, enables WAL mode, and bootstraps the schema.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
		log:    logging.Default().WithField("component", "storage"),
	}

	if err := s.enableWALMode(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	s.log.Debug("database initialized at %s", dbPath)
	return s, nil
}

// enableWALMode enables Write-Ahead Logging mode for better concurrency.
func (s *SQLiteStorage) enableWALMode() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to set WAL mode: %w", err)
	}

	var mode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		return fmt.Errorf("failed to verify WAL mode: %w", err)
	}
	if mode != "wal" && mode != "memory" {
		return fmt.Errorf("WAL mode not enabled, got: %s", mode)
	}

	return nil
}

// Close releases the underlying database resources.
func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// retryWithBackoff retries fn on transient SQLite lock contention.
func (s *SQLiteStorage) retryWithBackoff(ctx context.Context, fn func() error) error {
	const maxAttempts = 3

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !isBusyError(err) {
			return err
		}

		if attempt < maxAttempts {
			backoff := time.Duration(attempt) * 100 * time.Millisecond
			s.log.Debug("database busy, retrying in %s (attempt %d/%d)", backoff, attempt, maxAttempts)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return err
}

// isBusyError reports whether err is SQLite lock contention worth retrying.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
