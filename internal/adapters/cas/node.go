package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the fetch state store Graft node.
const NodeID graft.ID = "adapter.fetch_state_store"

func init() {
	graft.Register(graft.Node[ports.FetchStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FetchStateStore, error) {
			return NewStore(), nil
		},
	})
}
