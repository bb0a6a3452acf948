// Package git reads revisions from git checkouts.
package git

import (
	"context"
	"errors"
	"strings"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultBinary = "git"

// Reader implements ports.RevisionReader by running git.
type Reader struct {
	executor ports.Executor
	binary   string
}

var _ ports.RevisionReader = (*Reader)(nil)

// NewReader creates a new Reader that runs git from PATH.
func NewReader(executor ports.Executor) *Reader {
	return &Reader{executor: executor, binary: defaultBinary}
}

// LastCommit returns the hash of the last commit at dir.
func (r *Reader) LastCommit(ctx context.Context, dir string) (string, error) {
	return r.output(ctx, dir, "log", "-1", "--format=%H")
}

// HeadRevision returns the commit HEAD points to at dir.
func (r *Reader) HeadRevision(ctx context.Context, dir string) (string, error) {
	return r.output(ctx, dir, "rev-parse", "HEAD")
}

func (r *Reader) output(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := r.executor.Run(ctx, domain.Command{
		Name: r.binary,
		Args: args,
		Dir:  dir,
	})
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrRevisionLookupFailed, err), "dir", dir)
	}
	return strings.TrimSpace(res.Output), nil
}
