package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the unit loader Graft node.
const NodeID graft.ID = "adapter.loader"

func init() {
	graft.Register(graft.Node[ports.Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Loader, error) {
			return New(), nil
		},
	})
}
