package gn

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the GN writer Graft node.
const NodeID graft.ID = "adapter.gn"

func init() {
	graft.Register(graft.Node[ports.FragmentWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FragmentWriter, error) {
			return NewWriter(), nil
		},
	})
}
