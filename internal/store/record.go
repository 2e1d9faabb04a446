package store

import "errors"

// MaxRecordSize is the value-size cap a backend enforces per record, chosen
// to match the classic ~4KB cookie limit the storage model comes from.
const MaxRecordSize = 4096

// ErrTooLarge is returned by Set when a single record value exceeds
// MaxRecordSize. Callers that need more room go through ChunkStore.
var ErrTooLarge = errors.New("record value exceeds size limit")

// RecordStore is a bounded-record string store: each record holds at most
// MaxRecordSize bytes and survives for a caller-specified number of days.
// Expired records read as absent. Implementations are not safe for
// concurrent use; the app runs single-process, last writer wins.
type RecordStore interface {
	// Set writes value under name with the given retention in days.
	Set(name, value string, ttlDays int) error
	// Get returns the value and true if the record exists and has not
	// expired.
	Get(name string) (string, bool)
	// Delete removes the record if present.
	Delete(name string)
}
