package cipd

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/logger"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/shell"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the cipd client Graft node.
const NodeID graft.ID = "adapter.cipd"

func init() {
	graft.Register(graft.Node[ports.PackageEnsurer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageEnsurer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(executor, log), nil
		},
	})
}
