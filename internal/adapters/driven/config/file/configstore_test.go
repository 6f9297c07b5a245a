package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("user_id", "brandonrozek"))
	require.NoError(t, store.Set("request_interval_seconds", int64(1)))

	assert.Equal(t, "brandonrozek", store.GetString("user_id"))
	assert.Equal(t, 1, store.GetInt("request_interval_seconds"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("content_dir", "/srv/site/content/observations"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/site/content/observations", reopened.GetString("content_dir"))
}

func TestConfigStore_Keys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("user_id", "u"))
	require.NoError(t, store.Set("content_dir", "/c"))

	assert.Equal(t, []string{"content_dir", "user_id"}, store.Keys())
}

func TestConfigStore_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("user_id", int64(42)))
	assert.Empty(t, store.GetString("user_id"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_RestrictedPermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("user_id", "u"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
