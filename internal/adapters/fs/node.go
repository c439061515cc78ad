package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the source walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the module resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// LocatorNodeID is the unique identifier for the cache directory locator factory Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[ports.SourceWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.LocatorFactory]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LocatorFactory, error) {
			return func(cfg *domain.Config) ports.DirectoryLocator {
				return NewLocator(cfg)
			}, nil
		},
	})
}
