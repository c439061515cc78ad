package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxcache/internal/adapters/logger"
	"go.trai.ch/jsxcache/internal/core/ports"
)

// NodeID is the unique identifier for the transformer factory Graft node.
const NodeID graft.ID = "adapter.transformer"

func init() {
	graft.Register(graft.Node[ports.TransformerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TransformerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(command []string) ports.Transformer {
				return NewTransformer(command, log)
			}, nil
		},
	})
}
