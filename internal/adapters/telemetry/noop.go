package telemetry

import (
	"context"

	"go.trai.ch/jsxcache/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns ctx unchanged and a vertex that ignores all calls.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Cached()        {}
func (noopVertex) Complete(error) {}
