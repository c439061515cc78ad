package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/jsxcache/internal/adapters/telemetry/progrock"
	"go.trai.ch/jsxcache/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Register the SDK provider globally so spans are sampled and Close can flush them.
			tp := sdktrace.NewTracerProvider()
			otel.SetTracerProvider(tp)
			return NewMulti(progrock.New(), NewTracer(tp)), nil
		},
	})
}
