package hugo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

func TestStore_WriteThenRead(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	obs := testObservation()
	require.NoError(t, store.Write(ctx, obs))

	// File name derives from the id.
	_, err = os.Stat(filepath.Join(store.Dir(), "123.md"))
	require.NoError(t, err)

	frontmatter, content, err := store.Read(ctx, 123)
	require.NoError(t, err)
	assert.True(t, obs.Metadata.Equal(frontmatter))
	assert.Empty(t, content)
}

func TestStore_WriteOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	obs := testObservation()
	require.NoError(t, store.Write(ctx, obs))

	obs.Metadata.QualityGrade = "casual"
	require.NoError(t, store.Write(ctx, obs))

	frontmatter, _, err := store.Read(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, "casual", frontmatter["quality_grade"])
}

func TestStore_WriteLeavesNoTempFiles(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), testObservation()))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "123.md", entries[0].Name())
}

func TestStore_ReadNotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Read(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ReadMalformed(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path := filepath.Join(store.Dir(), "55.md")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, _, err = store.Read(context.Background(), 55)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestStore_ExistingIDs(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ids, err := store.ExistingIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	obs := testObservation()
	require.NoError(t, store.Write(ctx, obs))
	obs.ID = 456
	require.NoError(t, store.Write(ctx, obs))

	// Non-numeric stems are not observation files.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "_index.md"), []byte("x"), 0o644))

	ids, err = store.ExistingIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{123: true, 456: true}, ids)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "content")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
