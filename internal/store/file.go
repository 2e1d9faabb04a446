package store

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

type fileRecord struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// FileRecordStore keeps one small file per record under a directory. It is
// the local-disk stand-in for the cookie jar the storage model was designed
// around: records are independent, size-capped and individually expiring.
type FileRecordStore struct {
	dir string
}

// NewFileRecordStore creates the directory if needed and returns a store
// rooted at it.
func NewFileRecordStore(dir string) (*FileRecordStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating record directory: %w", err)
	}
	return &FileRecordStore{dir: dir}, nil
}

func (s *FileRecordStore) path(name string) string {
	// Record names are caller-controlled; escape so they cannot traverse
	// out of the directory.
	return filepath.Join(s.dir, url.PathEscape(name)+".rec")
}

func (s *FileRecordStore) Set(name, value string, ttlDays int) error {
	if len(value) > MaxRecordSize {
		return ErrTooLarge
	}
	rec := fileRecord{
		Value:   value,
		Expires: time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("writing record %q: %w", name, err)
	}
	return nil
}

func (s *FileRecordStore) Get(name string) (string, bool) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", false
	}
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Unreadable record files count as absent.
		return "", false
	}
	if time.Now().After(rec.Expires) {
		os.Remove(s.path(name))
		return "", false
	}
	return rec.Value, true
}

func (s *FileRecordStore) Delete(name string) {
	os.Remove(s.path(name))
}
