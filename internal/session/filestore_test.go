package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, found, err := store.Get(TokenKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(TokenKey, "tok-1"))

	value, found, err := store.Get(TokenKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok-1", value)

	require.NoError(t, store.Delete(TokenKey))

	_, found, err = store.Get(TokenKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_DeleteAbsentKeyIsNoop(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(TokenKey))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(TokenKey, "persisted"))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	value, found, err := reopened.Get(TokenKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}

func TestFileStore_TokenFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(TokenKey, "secret"))

	info, err := os.Stat(filepath.Join(dir, TokenKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RejectsPathyKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("../escape", "v"))
	_, _, err = store.Get("a/b")
	assert.Error(t, err)
}
