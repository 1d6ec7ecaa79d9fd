package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the precompiler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Precompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Precompiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPrecompiler(log), nil
		},
	})
}
