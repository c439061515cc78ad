package app

import (
	"errors"

	"go.trai.ch/jsxcache/internal/core/domain"
)

// Key returns the cache key the file at path would be stored under.
func (a *App) Key(path, configPath string) (domain.CacheKey, error) {
	s, err := a.session(configPath)
	if err != nil {
		return domain.CacheKey{}, err
	}

	abs, err := absPath(path)
	if err != nil {
		return domain.CacheKey{}, err
	}

	source, err := readSource(abs)
	if err != nil {
		return domain.CacheKey{}, err
	}

	return s.coordinator.Key(s.request("", abs, source, nil))
}

// Dir returns the primary cache directory.
func (a *App) Dir(configPath string) (string, error) {
	s, err := a.session(configPath)
	if err != nil {
		return "", err
	}
	return s.coordinator.Directory(), nil
}

// List returns the entries in the primary cache directory.
func (a *App) List(configPath string) ([]domain.EntryInfo, error) {
	dir, err := a.Dir(configPath)
	if err != nil {
		return nil, err
	}
	return a.store.List(dir)
}

// Clean removes every entry from the primary cache directory and reports how many were removed.
// Files that are not entries are left in place.
func (a *App) Clean(configPath string) (int, error) {
	dir, err := a.Dir(configPath)
	if err != nil {
		return 0, err
	}

	entries, err := a.store.List(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs error
	for _, entry := range entries {
		if err := a.store.Remove(dir, entry.Key); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		removed++
	}

	return removed, errs
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}
