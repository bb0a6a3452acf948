// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
)

// Executor defines the interface for running subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command, waits for it and returns its captured output.
	//
	// A non-zero exit is reported as a *domain.CommandError that still carries the result.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
