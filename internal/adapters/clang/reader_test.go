package clang_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/clang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateScript = `#!/usr/bin/env python3
"""This script is used to download prebuilt clang binaries."""

import os

# Do NOT CHANGE this if you don't know what you're doing -- see
# https://chromium.googlesource.com/chromium/src/+/main/docs/updating_clang.md
# Reverting problematic clang rolls is safe, though.
# This is the output of ` + "`git describe`" + ` and is usable as a commit-ish.
CLANG_REVISION = 'llvmorg-21-init-5118-g52cd27e6'
CLANG_SUB_REVISION = 5

# This is used by CIPD packages and the version must be the same everywhere.
PACKAGE_VERSION = '%s-%s' % (CLANG_REVISION, CLANG_SUB_REVISION)
RELEASE_VERSION = '21'
`

func TestParsePackageVersion(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		ok   bool
	}{
		{
			name: "composed from revision and sub revision",
			src:  updateScript,
			want: "llvmorg-21-init-5118-g52cd27e6-5",
			ok:   true,
		},
		{
			name: "literal package version wins",
			src:  "CLANG_REVISION = 'a'\nCLANG_SUB_REVISION = 1\nPACKAGE_VERSION = \"b-2\"\n",
			want: "b-2",
			ok:   true,
		},
		{
			name: "formatted package version is composed",
			src: "CLANG_REVISION = 'llvmorg-21-init-5118-g52cd27e6'\nCLANG_SUB_REVISION = 5\n" +
				"PACKAGE_VERSION = '%s-%s' % (CLANG_REVISION, CLANG_SUB_REVISION)\n",
			want: "llvmorg-21-init-5118-g52cd27e6-5",
			ok:   true,
		},
		{
			name: "literal with trailing expression is not a literal",
			src:  "CLANG_REVISION = 'a'\nCLANG_SUB_REVISION = 1\nPACKAGE_VERSION = 'b' + SUFFIX\n",
			want: "a-1",
			ok:   true,
		},
		{
			name: "formatted package version without revision",
			src:  "PACKAGE_VERSION = '%s-%s' % (CLANG_REVISION, CLANG_SUB_REVISION)\n",
			ok:   false,
		},
		{
			name: "missing sub revision",
			src:  "CLANG_REVISION = 'a'\n",
			ok:   false,
		},
		{
			name: "indented assignments are ignored",
			src:  "  CLANG_REVISION = 'a'\n  CLANG_SUB_REVISION = 1\n",
			ok:   false,
		},
		{
			name: "empty",
			src:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := clang.ParsePackageVersion([]byte(tt.src)).Get()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_PackageVersion(t *testing.T) {
	t.Run("reads script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "update.py")
		require.NoError(t, os.WriteFile(path, []byte(updateScript), 0o644))

		got, err := clang.NewReader().PackageVersion(path)
		require.NoError(t, err)
		assert.Equal(t, "llvmorg-21-init-5118-g52cd27e6-5", got.OrEmpty())
	})

	t.Run("missing script is absent", func(t *testing.T) {
		got, err := clang.NewReader().PackageVersion(filepath.Join(t.TempDir(), "missing.py"))
		require.NoError(t, err)
		assert.True(t, got.IsAbsent())
	})

	t.Run("unreadable path is an error", func(t *testing.T) {
		_, err := clang.NewReader().PackageVersion(t.TempDir())
		require.Error(t, err)
	})
}
