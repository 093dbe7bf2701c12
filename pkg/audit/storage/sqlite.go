// Package storage provides the SQLite backend for the audit trail.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"mercator-hq/ganymede/pkg/audit"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 4
	MaxOpenConns int

	// WALMode enables Write-Ahead Logging for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/audit.db",
		MaxOpenConns: 4,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStorage implements audit.Storage using SQLite (pure-Go driver).
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS violations (
	id          TEXT PRIMARY KEY,
	callable    TEXT NOT NULL,
	param       TEXT NOT NULL,
	expected    TEXT NOT NULL,
	value_type  TEXT NOT NULL,
	value       TEXT NOT NULL,
	observed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_violations_observed_at ON violations(observed_at);
CREATE INDEX IF NOT EXISTS idx_violations_callable ON violations(callable);
`

// NewSQLiteStorage opens (creating if necessary) the audit database and
// initializes its schema.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "audit.storage.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, audit.NewStorageError("sqlite", "open", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("audit storage opened",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)
	return s, nil
}

// initialize applies pragmas and creates the schema.
func (s *SQLiteStorage) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return audit.NewStorageError("sqlite", "enable WAL", err)
		}
	}
	if s.config.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout=%d", s.config.BusyTimeout.Milliseconds())
		if _, err := s.db.Exec(pragma); err != nil {
			return audit.NewStorageError("sqlite", "set busy timeout", err)
		}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return audit.NewStorageError("sqlite", "create schema", err)
	}
	return nil
}

// Save persists one record.
func (s *SQLiteStorage) Save(ctx context.Context, record *audit.Record) error {
	const q = `INSERT INTO violations (id, callable, param, expected, value_type, value, observed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		record.ID,
		record.Callable,
		record.Param,
		record.Expected,
		record.ValueType,
		record.Value,
		record.ObservedAt.UnixNano(),
	)
	if err != nil {
		return audit.NewStorageError("sqlite", "save", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStorage) Recent(ctx context.Context, limit int) ([]*audit.Record, error) {
	const q = `SELECT id, callable, param, expected, value_type, value, observed_at
		FROM violations ORDER BY observed_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, audit.NewStorageError("sqlite", "recent", err)
	}
	defer rows.Close()

	var records []*audit.Record
	for rows.Next() {
		var r audit.Record
		var observedAt int64
		if err := rows.Scan(&r.ID, &r.Callable, &r.Param, &r.Expected, &r.ValueType, &r.Value, &observedAt); err != nil {
			return nil, audit.NewStorageError("sqlite", "scan", err)
		}
		r.ObservedAt = time.Unix(0, observedAt)
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, audit.NewStorageError("sqlite", "recent", err)
	}
	return records, nil
}

// Count returns the total number of stored records.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM violations`).Scan(&n)
	if err != nil {
		return 0, audit.NewStorageError("sqlite", "count", err)
	}
	return n, nil
}

// DeleteOlderThan removes records observed before cutoff.
func (s *SQLiteStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM violations WHERE observed_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, audit.NewStorageError("sqlite", "delete older than", err)
	}
	return res.RowsAffected()
}

// DeleteOverCount removes the oldest records beyond max.
func (s *SQLiteStorage) DeleteOverCount(ctx context.Context, max int64) (int64, error) {
	const q = `DELETE FROM violations WHERE id IN (
		SELECT id FROM violations ORDER BY observed_at DESC LIMIT -1 OFFSET ?
	)`

	res, err := s.db.ExecContext(ctx, q, max)
	if err != nil {
		return 0, audit.NewStorageError("sqlite", "delete over count", err)
	}
	return res.RowsAffected()
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
