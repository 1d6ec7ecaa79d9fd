package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/config"             //nolint:depguard // Wired in app layer
	qfs "go.trai.ch/quill/internal/adapters/fs"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/gosrc"              //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/loader"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/markup"             //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/quill/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			markup.NodeID,
			gosrc.NodeID,
			loader.NodeID,
			progrock.NodeID,
			qfs.WalkerNodeID,
			qfs.HasherNodeID,
			watcher.NodeID,
			scheduler.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)
	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Parser, err = graft.Dep[ports.Parser](ctx); err != nil {
		return nil, err
	}
	if deps.Compiler, err = graft.Dep[ports.SourceCompiler](ctx); err != nil {
		return nil, err
	}
	if deps.Loader, err = graft.Dep[ports.Loader](ctx); err != nil {
		return nil, err
	}
	if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if deps.Walker, err = graft.Dep[ports.TemplateWalker](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[*qfs.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if deps.Precompiler, err = graft.Dep[*scheduler.Precompiler](ctx); err != nil {
		return nil, err
	}
	return New(deps), nil
}
