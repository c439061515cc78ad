package ports

import (
	"context"

	"go.trai.ch/jsxcache/internal/core/domain"
)

// TransformCache returns transformer output for a request, reusing previous results when possible.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type TransformCache interface {
	// Compute returns the output for req. When cacheEnabled is false the transformer
	// runs and nothing is read from or written to the cache.
	Compute(ctx context.Context, req *domain.Request, cacheEnabled bool) (string, error)

	// Directory returns the resolved starting cache directory.
	Directory() string
}
