// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jsxcache/internal/adapters/cas"
	_ "go.trai.ch/jsxcache/internal/adapters/config"
	_ "go.trai.ch/jsxcache/internal/adapters/fs"
	_ "go.trai.ch/jsxcache/internal/adapters/logger"
	_ "go.trai.ch/jsxcache/internal/adapters/memo"
	_ "go.trai.ch/jsxcache/internal/adapters/shell"
	_ "go.trai.ch/jsxcache/internal/adapters/telemetry"
	_ "go.trai.ch/jsxcache/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/jsxcache/internal/app"
)
