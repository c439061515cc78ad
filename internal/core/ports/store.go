package ports

import "go.trai.ch/jsxcache/internal/core/domain"

// EntryStore defines the content-addressed, directory-rooted entry store.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Get reads the entry for key under dir.
	// Any read failure, including a missing file, is reported as a miss.
	Get(dir string, key domain.CacheKey) ([]byte, bool)

	// Prepare makes sure dir exists, creating it recursively if needed.
	Prepare(dir string) error

	// Put writes the entry for key under dir.
	Put(dir string, key domain.CacheKey, data []byte) error

	// List returns the entries found in dir. A missing dir has no entries.
	List(dir string) ([]domain.EntryInfo, error)

	// Remove deletes the entry for key under dir. A missing entry is not an error.
	Remove(dir string, key domain.CacheKey) error
}
