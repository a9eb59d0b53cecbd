package prompt

import (
	"context"

	"github.com/grindlemire/graft"

	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const NodeID graft.ID = "adapter.prompter"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Prompter, error) {
			return NewTerminal(), nil
		},
	})
}
