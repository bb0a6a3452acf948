// Package main is the entry point for the buildtools command.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/cmd/buildtools/commands"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/app"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	defer func() { _ = components.Close() }()

	if l, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		l.SetOutput(stderr)
	}
	components.App.SetProgressOutput(stderr)

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Fetch failures were already reported as warnings.
		if errors.Is(err, domain.ErrFetchFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
