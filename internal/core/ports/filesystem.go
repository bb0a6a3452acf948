package ports

import (
	"os"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
)

// FileSystem is the subset of filesystem operations used to reconcile cfg directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm os.FileMode) error
	// Glob returns the regular files in dir matching pattern, sorted.
	Glob(dir, pattern string) ([]string, error)
	// ReplaceFile copies src to dst, removing dst first even if it is read-only.
	ReplaceFile(src, dst string) error
}

// HeaderLister enumerates the headers under an include directory.
type HeaderLister interface {
	// ListHeaders returns the sorted relative paths of all files under root, minus excluded ones.
	// excludes are doublestar patterns matched against the relative path.
	ListHeaders(root string, excludes []string) (domain.HeaderList, error)
}

// Hasher computes content digests.
type Hasher interface {
	// DigestFile returns the digest of the file's content.
	DigestFile(path string) (uint64, error)
	// DigestBytes returns the digest of data.
	DigestBytes(data []byte) uint64
}
