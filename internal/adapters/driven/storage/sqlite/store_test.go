package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestStore_RoundTrip tests set, get, overwrite, delete.
func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("user_preferences", []byte(`{"version":2}`)))

	value, found, err := store.Get("user_preferences")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"version":2}`), value)

	require.NoError(t, store.Set("user_preferences", []byte(`{"version":3}`)))
	value, _, err = store.Get("user_preferences")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":3}`), value)

	require.NoError(t, store.Delete("user_preferences"))
	_, found, err = store.Get("user_preferences")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, store.Delete("user_preferences"))
}

// TestStore_PersistsAcrossOpens tests data survives close and reopen,
// and migrations are idempotent.
func TestStore_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("key", []byte("value")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get("key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
}
