package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem_Exists(t *testing.T) {
	dir := t.TempDir()
	fsys := fs.NewFileSystem()

	assert.True(t, fsys.Exists(dir))
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing")))
}

func TestFileSystem_MkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "win-cross", "python")

	require.NoError(t, fs.NewFileSystem().MkdirAll(dir, 0o755))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileSystem_Glob(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "rewrapper_windows.cfg", "rewrapper_linux.cfg", "README", ".hidden.cfg", "nested/deep.cfg")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.cfg"), 0o755))

	got, err := fs.NewFileSystem().Glob(dir, "*.cfg")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "rewrapper_linux.cfg"),
		filepath.Join(dir, "rewrapper_windows.cfg"),
	}, got)
}

func TestFileSystem_Glob_MissingDir(t *testing.T) {
	got, err := fs.NewFileSystem().Glob(filepath.Join(t.TempDir(), "missing"), "*.cfg")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileSystem_Glob_BadPattern(t *testing.T) {
	_, err := fs.NewFileSystem().Glob(t.TempDir(), "[")
	require.Error(t, err)
}

func TestFileSystem_ReplaceFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.cfg")
	dst := filepath.Join(dir, "dst.cfg")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))

	t.Run("missing destination", func(t *testing.T) {
		require.NoError(t, fs.NewFileSystem().ReplaceFile(src, dst))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("read-only destination", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dst, []byte("old"), 0o444))
		require.NoError(t, os.Chmod(dst, 0o444))

		require.NoError(t, fs.NewFileSystem().ReplaceFile(src, dst))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("missing source", func(t *testing.T) {
		err := fs.NewFileSystem().ReplaceFile(filepath.Join(dir, "nope.cfg"), filepath.Join(dir, "other.cfg"))
		require.Error(t, err)
	})
}
