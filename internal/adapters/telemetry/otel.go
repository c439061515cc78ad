package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer used for cache spans.
const InstrumentationName = "go.trai.ch/jsxcache"

// CachedAttribute marks a span whose result came from the cache.
const CachedAttribute = attribute.Key("jsxcache.cached")

var (
	_ ports.Telemetry = (*Tracer)(nil)
	_ ports.Vertex    = (*Span)(nil)
)

// Tracer implements ports.Telemetry using OpenTelemetry spans.
type Tracer struct {
	provider trace.TracerProvider
	tracer   trace.Tracer
}

// shutdowner is implemented by SDK providers that flush and stop exporters.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// NewTracer creates a Tracer from the given provider.
func NewTracer(provider trace.TracerProvider) *Tracer {
	return &Tracer{provider: provider, tracer: provider.Tracer(InstrumentationName)}
}

// Record starts a new span.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close shuts the provider down when it supports shutdown.
func (t *Tracer) Close() error {
	if p, ok := t.provider.(shutdowner); ok {
		if err := p.Shutdown(context.Background()); err != nil {
			return zerr.Wrap(err, "failed to shut down tracer provider")
		}
	}
	return nil
}

// Span implements ports.Vertex over an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Cached marks the span as a cache hit.
func (s *Span) Cached() {
	s.span.SetAttributes(CachedAttribute.Bool(true))
}

// Complete ends the span, recording err when non-nil.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
