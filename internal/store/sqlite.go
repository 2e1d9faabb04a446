package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const recordSchema = `
CREATE TABLE IF NOT EXISTS records (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TEXT NOT NULL
);`

// SQLiteRecordStore keeps records in a single SQLite table. Same semantics
// as the file backend; useful when the data dir should be one portable file.
type SQLiteRecordStore struct {
	db *sql.DB
}

// NewSQLiteRecordStore opens (or creates) the database at path. ":memory:"
// opens an in-memory database.
func NewSQLiteRecordStore(path string) (*SQLiteRecordStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mode keeps reads cheap even while a write is in flight.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(recordSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating records table: %w", err)
	}

	return &SQLiteRecordStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteRecordStore) Set(name, value string, ttlDays int) error {
	if len(value) > MaxRecordSize {
		return ErrTooLarge
	}
	expires := time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour).UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO records (name, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		name, value, expires)
	if err != nil {
		return fmt.Errorf("writing record %q: %w", name, err)
	}
	return nil
}

func (s *SQLiteRecordStore) Get(name string) (string, bool) {
	var value, expiresAt string
	err := s.db.QueryRow(`SELECT value, expires_at FROM records WHERE name = ?`, name).
		Scan(&value, &expiresAt)
	if err != nil {
		return "", false
	}
	expires, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || time.Now().After(expires) {
		s.Delete(name)
		return "", false
	}
	return value, true
}

func (s *SQLiteRecordStore) Delete(name string) {
	s.db.Exec(`DELETE FROM records WHERE name = ?`, name)
}
