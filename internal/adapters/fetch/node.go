package fetch

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"

	"go.aurforge.dev/pkgsum/internal/adapters/logger"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const NodeID graft.ID = "adapter.fetch_runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := NewCache()
			if err != nil {
				log.Warn("download cache disabled: " + err.Error())
				cache = nil
			}

			progress := isatty.IsTerminal(os.Stderr.Fd())
			return NewRunner(NewHTTPFetcher(log, progress), cache, log), nil
		},
	})
}
