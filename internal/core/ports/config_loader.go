package ports

import "go.trai.ch/jsxcache/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration visible from the given working directory.
	// A missing config file yields the defaults.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration at an explicit path.
	LoadFile(path string) (*domain.Config, error)
}
