package ports

import (
	"context"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
)

// PackageEnsurer installs a package into a directory if it is not already present.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_ensurer.go -destination=mocks/mock_package_ensurer.go -package=mocks
type PackageEnsurer interface {
	// Ensure makes req.Root contain req.Package at req.Ref and returns the tool's output.
	Ensure(ctx context.Context, req domain.EnsureRequest) (string, error)
}
