// Package store persists finished sessions to a local SQLite database so the
// history survives across runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Session is one recorded clock-in/clock-out cycle.
type Session struct {
	ID        int64
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   uint64
	Logs      []string
}

// Store is SQLite-backed; safe for the single-writer usage WorkWatch has.
type Store struct {
	db *sql.DB
}

// Open creates dir if needed and opens (or creates) the history database.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.sqlite"))
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness if two instances overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: pragma: %w", err)
		}
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		seconds INTEGER NOT NULL,
		logs TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a finished session.
func (s *Store) Record(sess Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (started_at, ended_at, seconds, logs) VALUES (?, ?, ?, ?)`,
		sess.StartedAt.UTC().Format(time.RFC3339),
		sess.EndedAt.UTC().Format(time.RFC3339),
		int64(sess.Seconds),
		strings.Join(sess.Logs, "\n"),
	)
	if err != nil {
		return fmt.Errorf("store: record session: %w", err)
	}
	return nil
}

// List returns recorded sessions, newest first. limit <= 0 means no limit.
func (s *Store) List(limit int) ([]Session, error) {
	q := `SELECT id, started_at, ended_at, seconds, logs FROM sessions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			sess       Session
			started    string
			ended      string
			seconds    int64
			joinedLogs string
		)
		if err := rows.Scan(&sess.ID, &started, &ended, &seconds, &joinedLogs); err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		if sess.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("store: parse started_at: %w", err)
		}
		if sess.EndedAt, err = time.Parse(time.RFC3339, ended); err != nil {
			return nil, fmt.Errorf("store: parse ended_at: %w", err)
		}
		sess.Seconds = uint64(seconds)
		if joinedLogs != "" {
			sess.Logs = strings.Split(joinedLogs, "\n")
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	return out, nil
}
