package gosrc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the Go source compiler Graft node.
const NodeID graft.ID = "adapter.gosrc"

func init() {
	graft.Register(graft.Node[ports.SourceCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
