package srcinfo

import (
	"context"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/internal/adapters/logger"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const NodeID graft.ID = "adapter.srcinfo"

func init() {
	graft.Register(graft.Node[ports.SrcinfoGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SrcinfoGenerator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMakepkg(log), nil
		},
	})
}
