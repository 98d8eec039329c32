package templates

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobreath/nbassist/internal/core/ports/driven"
)

// TestStore_DefaultsOnFirstLoad tests default files are written lazily
// and their content served.
func TestStore_DefaultsOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	// No I/O before the first Load.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	tmpl, err := store.Load(driven.TemplateCoachPersona)
	require.NoError(t, err)
	assert.Contains(t, tmpl, "wellbeing coach")

	_, err = os.Stat(filepath.Join(dir, driven.TemplateCoachPersona+".txt"))
	assert.NoError(t, err)
}

// TestStore_UserOverride tests an edited file wins over the default
// after Reload.
func TestStore_UserOverride(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.TemplateBuddyPersona)
	require.NoError(t, err)

	custom := "CUSTOM BUDDY\n"
	path := filepath.Join(dir, driven.TemplateBuddyPersona+".txt")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0600))

	store.Reload()
	tmpl, err := store.Load(driven.TemplateBuddyPersona)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM BUDDY", tmpl)
}

// TestStore_UnknownName tests unknown template names error rather than
// returning empty content.
func TestStore_UnknownName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_template")
	assert.Error(t, err)
}

// TestStore_CachesLoads tests a loaded template is served from cache
// until Reload.
func TestStore_CachesLoads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.TemplateSafetyRules)
	require.NoError(t, err)

	// Edit behind the store's back: cached value still served.
	path := filepath.Join(dir, driven.TemplateSafetyRules+".txt")
	require.NoError(t, os.WriteFile(path, []byte("EDITED"), 0600))

	again, err := store.Load(driven.TemplateSafetyRules)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestStore_WatchReloads tests the watcher picks up edits.
func TestStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.TemplateBlogPersona)
	require.NoError(t, err)

	require.NoError(t, store.Watch())
	defer store.Close()

	path := filepath.Join(dir, driven.TemplateBlogPersona+".txt")
	require.NoError(t, os.WriteFile(path, []byte("WATCHED EDIT"), 0600))

	// The watcher clears the cache asynchronously; poll briefly.
	assert.Eventually(t, func() bool {
		tmpl, err := store.Load(driven.TemplateBlogPersona)
		return err == nil && tmpl == "WATCHED EDIT"
	}, 2*time.Second, 50*time.Millisecond)
}
