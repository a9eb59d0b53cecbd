package config

import (
	"context"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/internal/adapters/logger"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const NodeID graft.ID = "adapter.defaults"

func init() {
	graft.Register(graft.Node[domain.Defaults]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (domain.Defaults, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return domain.Defaults{}, err
			}
			return NewLoader(log).Load()
		},
	})
}
