package resolver

import (
	"context"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/internal/adapters/config"
	"go.aurforge.dev/pkgsum/internal/adapters/logger"
	"go.aurforge.dev/pkgsum/internal/adapters/prompt"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{prompt.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			defaults, err := graft.Dep[domain.Defaults](ctx)
			if err != nil {
				return nil, err
			}
			return New(prompter, log, defaults), nil
		},
	})
}
