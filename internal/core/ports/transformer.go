// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/jsxcache/internal/core/domain"
)

// Transformer performs the expensive source rewrite whose output the cache preserves.
//
//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	// Transform rewrites source using opts. filename is used for diagnostics only.
	// Errors are returned to the caller of the cache unchanged.
	Transform(ctx context.Context, source string, opts domain.Options, filename string) (string, error)
}

// TransformerFactory creates the Transformer for a configured command.
type TransformerFactory func(command []string) Transformer
