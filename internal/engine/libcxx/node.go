package libcxx

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/gn"                 //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.libcxx"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ListerNodeID,
			git.NodeID,
			gn.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			lister, err := graft.Dep[ports.HeaderLister](ctx)
			if err != nil {
				return nil, err
			}

			revisions, err := graft.Dep[ports.RevisionReader](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.FragmentWriter](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(lister, revisions, writer, hasher, telemetry, log), nil
		},
	})
}
