package app

import "go.trai.ch/jsxcache/internal/core/ports"

// Components holds the resolved application dependencies.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
