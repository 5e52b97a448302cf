package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set("display-mode", "dark"))

	// A second store on the same file simulates a restart.
	v, ok, err := NewFileStore(path).Get("display-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestFileStore_MissingFile(t *testing.T) {
	t.Parallel()
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	v, ok, err := s.Get("display-mode")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileStore_CreatesDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	require.NoError(t, NewFileStore(path).Set("k", "v"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewFileStore(path)

	v, ok, err := s.Get("display-mode")
	require.NoError(t, err, "a corrupt file reads as empty")
	assert.False(t, ok)
	assert.Empty(t, v)

	_, err = s.All()
	assert.Error(t, err)

	require.NoError(t, s.Set("display-mode", "light"), "Set must recover a corrupt file")
	v, ok, err = s.Get("display-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFileStore_Delete(t *testing.T) {
	t.Parallel()
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Delete("missing"))

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, all)
}

func TestFileStore_UnwritableDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := NewFileStore(filepath.Join(blocker, "prefs.json"))
	assert.Error(t, s.Set("k", "v"))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	require.NoError(t, s.Set("k", "v"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete("k"))
	_, ok, _ = s.Get("k")
	assert.False(t, ok)
}
