package memo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxcache/internal/core/ports"
)

// NodeID is the unique identifier for the memo Graft node.
const NodeID graft.ID = "adapter.memo"

func init() {
	graft.Register(graft.Node[ports.Memo]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Memo, error) {
			return New(), nil
		},
	})
}
