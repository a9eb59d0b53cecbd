package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/internal/adapters/fetch"
	"go.aurforge.dev/pkgsum/internal/adapters/logger"
	"go.aurforge.dev/pkgsum/internal/adapters/prompt"
	"go.aurforge.dev/pkgsum/internal/adapters/resolver"
	"go.aurforge.dev/pkgsum/internal/adapters/srcinfo"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the commands
// need.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			fetch.NodeID,
			srcinfo.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[*fetch.Runner](ctx)
			if err != nil {
				return nil, err
			}
			gen, err := graft.Dep[ports.SrcinfoGenerator](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(res, runner, gen, prompter, log, os.Stdout), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
