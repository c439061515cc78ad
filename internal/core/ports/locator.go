package ports

import "go.trai.ch/jsxcache/internal/core/domain"

// DirectoryLocator decides where the cache lives.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type DirectoryLocator interface {
	// Locate returns the starting cache directory. It never fails: when no project
	// cache directory can be determined it returns the temporary directory.
	Locate() string

	// TempDir returns the terminal fallback directory.
	TempDir() string
}

// LocatorFactory creates the DirectoryLocator for a resolved configuration.
type LocatorFactory func(cfg *domain.Config) DirectoryLocator
