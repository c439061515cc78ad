// Package telemetry provides the telemetry adapters and their composition.
package telemetry

import (
	"context"
	"errors"

	"go.trai.ch/jsxcache/internal/core/ports"
)

var _ ports.Telemetry = Multi(nil)

// Multi fans every recording out to several backends.
type Multi []ports.Telemetry

// NewMulti combines the given backends.
func NewMulti(backends ...ports.Telemetry) Multi {
	return Multi(backends)
}

// Record starts a vertex on every backend. The returned context carries each backend's additions.
func (m Multi) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(m))
	for _, backend := range m {
		var v ports.Vertex
		ctx, v = backend.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every backend and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, backend := range m {
		if err := backend.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type multiVertex []ports.Vertex

func (m multiVertex) Cached() {
	for _, v := range m {
		v.Cached()
	}
}

func (m multiVertex) Complete(err error) {
	for _, v := range m {
		v.Complete(err)
	}
}
