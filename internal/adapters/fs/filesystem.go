package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", path)
	}
	return nil
}

// Glob returns the regular files directly matching pattern inside dir, sorted. Like shell
// globbing, names starting with a dot are not matched by wildcards.
func (f *FileSystem) Glob(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "dir", dir), "pattern", pattern)
	}

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") && !strings.HasPrefix(filepath.Base(pattern), ".") {
			continue
		}
		result = append(result, filepath.Join(dir, filepath.FromSlash(m)))
	}
	slices.Sort(result)
	return result, nil
}

// ReplaceFile copies src over dst. An existing dst is made writable and removed first so that
// read-only files left by cipd can be replaced.
func (f *FileSystem) ReplaceFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Chmod(dst, domain.WritablePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", dst)
		}
		if err := os.Remove(dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", dst)
		}
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", dst)
	}

	if err := copyFile(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "src", src), "dst", dst)
	}
	return nil
}

// copyFile copies content and permission bits.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	// OpenFile applies the umask; set the source bits explicitly.
	return out.Chmod(info.Mode().Perm())
}
