package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecordStore_RoundTrip(t *testing.T) {
	records, err := NewFileRecordStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, records.Set("nb_theme", "dark", 365))
	got, ok := records.Get("nb_theme")
	require.True(t, ok)
	assert.Equal(t, "dark", got)

	// Overwrite
	require.NoError(t, records.Set("nb_theme", "light", 365))
	got, _ = records.Get("nb_theme")
	assert.Equal(t, "light", got)

	records.Delete("nb_theme")
	_, ok = records.Get("nb_theme")
	assert.False(t, ok)
}

func TestFileRecordStore_MissingRecord(t *testing.T) {
	records, err := NewFileRecordStore(t.TempDir())
	require.NoError(t, err)

	_, ok := records.Get("nope")
	assert.False(t, ok)

	// Deleting a missing record is a no-op.
	records.Delete("nope")
}

func TestFileRecordStore_SizeCap(t *testing.T) {
	records, err := NewFileRecordStore(t.TempDir())
	require.NoError(t, err)

	err = records.Set("big", strings.Repeat("x", MaxRecordSize+1), 30)
	require.ErrorIs(t, err, ErrTooLarge)

	require.NoError(t, records.Set("fits", strings.Repeat("x", MaxRecordSize), 30))
}

func TestFileRecordStore_Expiry(t *testing.T) {
	records, err := NewFileRecordStore(t.TempDir())
	require.NoError(t, err)

	// A negative TTL writes an already-expired record.
	require.NoError(t, records.Set("stale", "v", -1))
	_, ok := records.Get("stale")
	assert.False(t, ok)
}

func TestFileRecordStore_UnsafeNames(t *testing.T) {
	dir := t.TempDir()
	records, err := NewFileRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, records.Set("../escape", "v", 30))
	got, ok := records.Get("../escape")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
