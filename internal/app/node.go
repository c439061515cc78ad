package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsxcache/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/memo"      //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jsxcache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cas.NodeID,
			memo.NodeID,
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			fs.LocatorNodeID,
			logger.NodeID,
			telemetry.NodeID,
			shell.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Memo](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			newLocator, err := graft.Dep[ports.LocatorFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			newTransformer, err := graft.Dep[ports.TransformerFactory](ctx)
			if err != nil {
				return nil, err
			}
			newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, store, m, resolver, walker, log, tel, newTransformer, newLocator, newWatcher), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, Telemetry: tel}, nil
		},
	})
}
