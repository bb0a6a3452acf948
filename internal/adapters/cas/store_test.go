package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/cas"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndGet(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), domain.FetchStateFile)
	store := cas.NewStore()

	rec := domain.FetchRecord{
		Toolchain: "python",
		Package:   "infra_internal/rbe/reclient_cfgs/p/python",
		Ref:       "revision/3.8.0",
		Cfgs:      []string{"win-cross/python/rewrapper_windows.cfg"},
	}
	require.NoError(t, store.Put(statePath, rec))

	got, err := store.Get(statePath, "python")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestStore_PutSameRecordKeepsBytes(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), domain.FetchStateFile)
	rec := domain.FetchRecord{Toolchain: "nacl", Ref: "revision/a"}

	require.NoError(t, cas.NewStore().Put(statePath, domain.FetchRecord{Toolchain: "python", Ref: "revision/b"}))
	require.NoError(t, cas.NewStore().Put(statePath, rec))
	first, err := os.ReadFile(statePath)
	require.NoError(t, err)

	require.NoError(t, cas.NewStore().Put(statePath, rec))
	second, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_GetMissing(t *testing.T) {
	store := cas.NewStore()

	got, err := store.Get(filepath.Join(t.TempDir(), "missing.json"), "nacl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "cfgs", domain.FetchStateFile)

	require.NoError(t, cas.NewStore().Put(statePath, domain.FetchRecord{Toolchain: "nacl", Ref: "revision/a"}))
	require.NoError(t, cas.NewStore().Put(statePath, domain.FetchRecord{Toolchain: "python", Ref: "revision/b"}))
	require.NoError(t, cas.NewStore().Put(statePath, domain.FetchRecord{Toolchain: "nacl", Ref: "revision/c"}))

	store := cas.NewStore()
	nacl, err := store.Get(statePath, "nacl")
	require.NoError(t, err)
	assert.Equal(t, "revision/c", nacl.Ref)

	python, err := store.Get(statePath, "python")
	require.NoError(t, err)
	assert.Equal(t, "revision/b", python.Ref)
}

func TestStore_CorruptFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), domain.FetchStateFile)
	require.NoError(t, os.WriteFile(statePath, []byte("{not json"), 0o644))

	_, err := cas.NewStore().Get(statePath, "python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStateUnmarshalFailed.Error())

	err = cas.NewStore().Put(statePath, domain.FetchRecord{Toolchain: "python"})
	require.Error(t, err)
}

func TestStore_EmptyFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), domain.FetchStateFile)
	require.NoError(t, os.WriteFile(statePath, nil, 0o644))

	got, err := cas.NewStore().Get(statePath, "python")
	require.NoError(t, err)
	assert.Nil(t, got)
}
