package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxcache/internal/adapters/cas"
	"go.trai.ch/jsxcache/internal/core/domain"
)

func mustKey(t *testing.T, source string, enc domain.Encoding) domain.CacheKey {
	t.Helper()
	key, err := domain.DeriveKey(source, nil, "test", enc)
	require.NoError(t, err)
	return key
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()
	key := mustKey(t, "For testing", domain.EncodingRaw)

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, ok := store.Get(t.TempDir(), key)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(dir, key, []byte("h('div')")))

		got, ok := store.Get(dir, key)
		require.True(t, ok)
		assert.Equal(t, "h('div')", string(got))

		info, err := os.Stat(filepath.Join(dir, key.Filename()))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
	})
}

func TestStore_Get_UnreadableIsMiss(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()
	key := mustKey(t, "src", domain.EncodingRaw)

	// A directory where the entry file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, key.Filename()), 0o750))

	_, ok := store.Get(dir, key)
	assert.False(t, ok)
}

func TestStore_Put_NoTempLeftovers(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()
	key := mustKey(t, "src", domain.EncodingRaw)

	require.NoError(t, store.Put(dir, key, []byte("one")))
	require.NoError(t, store.Put(dir, key, []byte("one")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, key.Filename(), entries[0].Name())
}

func TestStore_Put_MissingDir(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := filepath.Join(t.TempDir(), "absent")

	err := store.Put(dir, mustKey(t, "src", domain.EncodingRaw), []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheWriteFailed.Error())
}

func TestStore_Prepare(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "node_modules", ".cache", "jsxcache")
		require.NoError(t, store.Prepare(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("fails below a regular file", func(t *testing.T) {
		t.Parallel()
		blocker := filepath.Join(t.TempDir(), "blocker")
		//nolint:gosec // 0644 is fine for test
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := store.Prepare(filepath.Join(blocker, "cache"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCacheDirCreateFailed.Error())
	})
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()

	raw := mustKey(t, "a", domain.EncodingRaw)
	record := mustKey(t, "b", domain.EncodingRecord)
	require.NoError(t, store.Put(dir, raw, []byte("aa")))
	require.NoError(t, store.Put(dir, record, []byte(`{"code":"b"}`)))
	//nolint:gosec // 0644 is fine for test
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	entries, err := store.List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got := map[domain.CacheKey]int64{}
	for _, e := range entries {
		got[e.Key] = e.Size
		assert.Equal(t, filepath.Join(dir, e.Key.Filename()), e.Path)
	}
	assert.Equal(t, int64(2), got[raw])
	assert.Equal(t, int64(len(`{"code":"b"}`)), got[record])

	missing, err := store.List(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()
	key := mustKey(t, "<div/>", domain.EncodingRaw)

	require.NoError(t, store.Put(dir, key, []byte("h('div')")))
	require.NoError(t, store.Remove(dir, key))

	_, ok := store.Get(dir, key)
	assert.False(t, ok)

	// Removing again is not an error.
	require.NoError(t, store.Remove(dir, key))
}

func TestStore_Remove_Fails(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	dir := t.TempDir()
	key := mustKey(t, "<div/>", domain.EncodingRaw)

	// A non-empty directory at the entry path cannot be removed with os.Remove.
	entryDir := filepath.Join(dir, key.Filename())
	require.NoError(t, os.MkdirAll(filepath.Join(entryDir, "child"), domain.DirPerm))

	err := store.Remove(dir, key)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheRemoveFailed.Error())
}
