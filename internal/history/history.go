package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one generated code.
type Entry struct {
	ID    int64
	Time  time.Time
	Input string
	Level string
	Mode  string
	Size  int
}

// History records every generated code to a SQLite database.
type History struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and ensures the
// qr_history table exists.
func New(dbPath string) (*History, error) {
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS qr_history (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		ts    TEXT    NOT NULL,
		input TEXT    NOT NULL,
		level TEXT    NOT NULL,
		mode  TEXT    NOT NULL,
		size  INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &History{db: db}, nil
}

// Record inserts one row. A zero e.Time is replaced with the current time.
// It is safe to call concurrently.
func (h *History) Record(e Entry) error {
	ts := e.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := h.db.Exec(
		`INSERT INTO qr_history (ts, input, level, mode, size) VALUES (?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339Nano), e.Input, e.Level, e.Mode, e.Size,
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (h *History) Recent(limit int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, ts, input, level, mode, size FROM qr_history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &ts, &e.Input, &e.Level, &e.Mode, &e.Size); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.Time, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes every entry.
func (h *History) Clear() error {
	_, err := h.db.Exec(`DELETE FROM qr_history`)
	return err
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}
