package reclient

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/cipd"               //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/clang"              //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.reclient"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			cipd.NodeID,
			git.NodeID,
			clang.NodeID,
			fs.FileSystemNodeID,
			cas.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			ensurer, err := graft.Dep[ports.PackageEnsurer](ctx)
			if err != nil {
				return nil, err
			}

			revisions, err := graft.Dep[ports.RevisionReader](ctx)
			if err != nil {
				return nil, err
			}

			clangReader, err := graft.Dep[ports.ClangVersionReader](ctx)
			if err != nil {
				return nil, err
			}

			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.FetchStateStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFetcher(log, ensurer, revisions, clangReader, fileSystem, store, telemetry), nil
		},
	})
}
