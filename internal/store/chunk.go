package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// chunkVersion is stamped into every meta record so a future format
	// change can be detected. A mismatched version is still decoded today.
	chunkVersion = 1

	// ChunkSize is the fragment payload size. Conservative against
	// MaxRecordSize so the record name and backend overhead fit under the
	// cap.
	ChunkSize = 2800

	// sweepLimit bounds the orphan sweeps so a corrupt backend cannot make
	// them spin forever.
	sweepLimit = 200
)

type chunkMeta struct {
	V     int   `json:"v"`
	Parts int   `json:"parts"`
	TS    int64 `json:"ts"`
}

// ChunkStore persists arbitrary JSON-serializable values through a
// RecordStore whose individual records are size-capped. A value is encoded
// to base64, split into ChunkSize fragments stored as key__0..key__N-1, and
// described by a key__meta record. Reads are all-or-nothing: a missing
// fragment or any decode failure reads as "not found", never as partial
// data.
type ChunkStore struct {
	records RecordStore
}

// NewChunkStore wraps a record backend.
func NewChunkStore(records RecordStore) *ChunkStore {
	return &ChunkStore{records: records}
}

func fragmentName(key string, i int) string {
	return fmt.Sprintf("%s__%d", key, i)
}

func metaName(key string) string {
	return key + "__meta"
}

// Put serializes value and writes it under key with the given retention.
// Failures are reported, never panicked: a failed Put means "changes not
// saved" and the previous value may be left in an inconsistent set of
// fragments, which a later Get treats as absent.
func (c *ChunkStore) Put(key string, value any, ttlDays int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", key, err)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	parts := (len(encoded) + ChunkSize - 1) / ChunkSize
	if parts < 1 {
		parts = 1
	}
	for i := 0; i < parts; i++ {
		end := (i + 1) * ChunkSize
		if end > len(encoded) {
			end = len(encoded)
		}
		if err := c.records.Set(fragmentName(key, i), encoded[i*ChunkSize:end], ttlDays); err != nil {
			return fmt.Errorf("writing fragment %d of %q: %w", i, key, err)
		}
	}

	meta, err := json.Marshal(chunkMeta{V: chunkVersion, Parts: parts, TS: time.Now().UnixMilli()})
	if err != nil {
		return fmt.Errorf("serializing meta for %q: %w", key, err)
	}
	if err := c.records.Set(metaName(key), string(meta), ttlDays); err != nil {
		return fmt.Errorf("writing meta for %q: %w", key, err)
	}

	// The value may have shrunk since the last Put; sweep leftover
	// fragments above the new count.
	for i := parts; i <= sweepLimit; i++ {
		if _, ok := c.records.Get(fragmentName(key, i)); !ok {
			break
		}
		c.records.Delete(fragmentName(key, i))
	}

	return nil
}

// Get reassembles the value stored under key into out and reports whether a
// complete, decodable value was found. Partial or corrupt data never
// surfaces: every failure path reads as not found.
func (c *ChunkStore) Get(key string, out any) bool {
	rawMeta, ok := c.records.Get(metaName(key))
	if !ok {
		return false
	}

	var meta chunkMeta
	if err := json.Unmarshal([]byte(rawMeta), &meta); err != nil {
		return false
	}
	if meta.Parts < 1 {
		return false
	}

	encoded := make([]byte, 0, meta.Parts*ChunkSize)
	for i := 0; i < meta.Parts; i++ {
		part, ok := c.records.Get(fragmentName(key, i))
		if !ok {
			return false
		}
		encoded = append(encoded, part...)
	}

	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Delete removes the meta record and sweeps fragments upward from 0 until
// the first gap.
func (c *ChunkStore) Delete(key string) {
	c.records.Delete(metaName(key))
	for i := 0; i <= sweepLimit; i++ {
		if _, ok := c.records.Get(fragmentName(key, i)); !ok {
			break
		}
		c.records.Delete(fragmentName(key, i))
	}
}
