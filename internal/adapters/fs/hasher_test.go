package fs_test

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_DigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.gni")
	content := []byte("libcxx_headers = []\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h := fs.NewHasher()
	got, err := h.DigestFile(path)
	require.NoError(t, err)

	assert.Equal(t, xxhash.Sum64(content), got)
	assert.Equal(t, got, h.DigestBytes(content))
	assert.NotEqual(t, got, h.DigestBytes([]byte("libcxx_headers = [ ]\n")))
}

func TestHasher_DigestFile_Missing(t *testing.T) {
	_, err := fs.NewHasher().DigestFile(filepath.Join(t.TempDir(), "missing.gni"))

	require.Error(t, err)
	assert.ErrorIs(t, err, iofs.ErrNotExist)
	assert.ErrorIs(t, err, domain.ErrFileOpenFailed)
}
