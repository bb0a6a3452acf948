package ports

import (
	"context"

	"github.com/samber/mo"
)

// RevisionReader queries the version control checkout containing a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionReader interface {
	// HeadRevision returns the commit checked out at dir.
	HeadRevision(ctx context.Context, dir string) (string, error)
	// LastCommit returns the hash of the most recent commit reachable from HEAD at dir.
	LastCommit(ctx context.Context, dir string) (string, error)
}

// ClangVersionReader reads the clang package version declared by the clang update script.
type ClangVersionReader interface {
	// PackageVersion returns the version, or none when the script is absent or declares none.
	PackageVersion(scriptPath string) (mo.Option[string], error)
}
