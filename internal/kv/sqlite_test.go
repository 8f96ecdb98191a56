package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kv_test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", `{"sessions":[]}`))

	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"sessions":[]}`, got)
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kv_test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", "first"))
	require.NoError(t, store.Set("k", "second"))

	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestSQLiteStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kv_test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v"))
	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
