// Package cas implements the content addressable entry store.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryStore = (*Store)(nil)

// Store implements ports.EntryStore using one file per key.
// Entries are immutable; a key is only ever written with the same bytes.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get reads the entry for key under dir. Every read failure is a miss.
func (s *Store) Get(dir string, key domain.CacheKey) ([]byte, bool) {
	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(s.path(dir, key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Prepare creates dir and its parents if needed.
func (s *Store) Prepare(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

// Put writes the entry atomically: readers see either no file or the complete payload.
func (s *Store) Put(dir string, key domain.CacheKey, data []byte) error {
	path := s.path(dir, key)

	tmpFile, err := os.CreateTemp(dir, ".entry-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	return nil
}

// List returns the entries in dir in filename order.
// The directory listing is the only index; files that are not entries are skipped.
func (s *Store) List(dir string) ([]domain.EntryInfo, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheListFailed.Error()), "dir", dir)
	}

	entries := make([]domain.EntryInfo, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}

		key, ok := domain.ParseFilename(de.Name())
		if !ok {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}

		entries = append(entries, domain.EntryInfo{
			Key:     key,
			Path:    filepath.Join(dir, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

// Remove deletes the entry for key under dir.
func (s *Store) Remove(dir string, key domain.CacheKey) error {
	path := s.path(dir, key)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRemoveFailed.Error()), "path", path)
	}
	return nil
}

func (s *Store) path(dir string, key domain.CacheKey) string {
	return filepath.Join(dir, key.Filename())
}
