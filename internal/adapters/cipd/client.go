// Package cipd drives the cipd client to install packages.
package cipd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.PackageEnsurer by running `cipd ensure`.
type Client struct {
	executor ports.Executor
	logger   ports.Logger
}

var _ ports.PackageEnsurer = (*Client)(nil)

// NewClient creates a new cipd Client.
func NewClient(executor ports.Executor, logger ports.Logger) *Client {
	return &Client{executor: executor, logger: logger}
}

// Ensure installs req.Package at req.Ref into req.Root. The ensure file is piped on stdin and
// stderr is folded into the returned output.
//
// On failure the returned error wraps domain.ErrCipdEnsureFailed and the *domain.CommandError.
func (c *Client) Ensure(ctx context.Context, req domain.EnsureRequest) (string, error) {
	c.logger.Info(fmt.Sprintf("ensure %s %s in %s", req.Package, req.Ref, req.Root))

	res, err := c.executor.Run(ctx, domain.Command{
		Name:        req.Executable(),
		Args:        req.Args(),
		Stdin:       req.Manifest(),
		MergeStderr: true,
	})
	if err != nil {
		return res.Output, zerr.With(errors.Join(domain.ErrCipdEnsureFailed, err), "package", req.Package)
	}

	c.logger.Info(res.Output)
	return res.Output, nil
}
