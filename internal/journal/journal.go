// Package journal persists a log of engine commands to SQLite. The journal
// is optional; the server runs without one when no path is configured.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/flopperam/unrealmcp/internal/unreal"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS commands (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		command_type TEXT NOT NULL,
		params TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_commands_started_at ON commands (started_at);`,
}

// Store is a SQLite-backed command journal. It implements unreal.Recorder.
type Store struct {
	sqlDB *sql.DB
}

// Entry is one journaled command.
type Entry struct {
	ID       string
	Started  time.Time
	Type     string
	Params   string
	Status   string
	Error    string
	Duration time.Duration
}

// Open opens or creates the journal at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	sqlDB, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping journal db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	for _, stmt := range migrations {
		if _, err := sqlDB.Exec(stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply journal schema: %w", err)
		}
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record persists one command record.
func (s *Store) Record(ctx context.Context, rec unreal.CommandRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("journal is not configured")
	}
	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("command id is required")
	}

	params := string(rec.Params)
	if params == "" {
		params = "{}"
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO commands (id, started_at, command_type, params, status, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Started.UTC().Format(timeFormat),
		rec.Type,
		params,
		rec.Status,
		rec.Error,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert command record: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("journal is not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, started_at, command_type, params, status, error, duration_ms
		 FROM commands ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query command records: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			started    string
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &started, &e.Type, &e.Params, &e.Status, &e.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("scan command record: %w", err)
		}
		ts, err := time.Parse(timeFormat, started)
		if err != nil {
			return nil, fmt.Errorf("parse record timestamp: %w", err)
		}
		e.Started = ts
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate command records: %w", err)
	}
	return entries, nil
}
