package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/engine/libcxx"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/engine/reclient"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			progrock.NodeID,
			reclient.NodeID,
			libcxx.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[*reclient.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[*libcxx.Generator](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, telemetry, fetcher, generator), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
