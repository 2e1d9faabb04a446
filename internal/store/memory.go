package store

import "time"

type memRecord struct {
	value   string
	expires time.Time
}

// MemRecordStore is an in-memory RecordStore used by tests and throwaway
// runs. Same size and expiry semantics as the persistent backends.
type MemRecordStore struct {
	records map[string]memRecord
	now     func() time.Time
}

// NewMemRecordStore returns an empty in-memory store.
func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{
		records: make(map[string]memRecord),
		now:     time.Now,
	}
}

// SetClock overrides the store's clock, letting tests expire records.
func (s *MemRecordStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *MemRecordStore) Set(name, value string, ttlDays int) error {
	if len(value) > MaxRecordSize {
		return ErrTooLarge
	}
	s.records[name] = memRecord{
		value:   value,
		expires: s.now().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
	return nil
}

func (s *MemRecordStore) Get(name string) (string, bool) {
	rec, ok := s.records[name]
	if !ok {
		return "", false
	}
	if s.now().After(rec.expires) {
		delete(s.records, name)
		return "", false
	}
	return rec.value, true
}

func (s *MemRecordStore) Delete(name string) {
	delete(s.records, name)
}

// Len returns the number of live records; test helper for sweep assertions.
func (s *MemRecordStore) Len() int {
	return len(s.records)
}
