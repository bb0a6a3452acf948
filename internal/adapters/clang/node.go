package clang

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
)

// NodeID is the unique identifier for the clang version reader Graft node.
const NodeID graft.ID = "adapter.clang"

func init() {
	graft.Register(graft.Node[ports.ClangVersionReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClangVersionReader, error) {
			return NewReader(), nil
		},
	})
}
