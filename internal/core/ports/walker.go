package ports

import "iter"

// SourceWalker finds transformable sources below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type SourceWalker interface {
	// WalkSources yields the source files under root, skipping names matched by ignores.
	WalkSources(root string, ignores []string) iter.Seq[string]
}
