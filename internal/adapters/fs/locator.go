// Package fs provides file system adapters for locating the cache, resolving modules and walking sources.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
)

var _ ports.DirectoryLocator = (*Locator)(nil)

// Locator implements ports.DirectoryLocator.
//
// Precedence:
//  1. the configured cache directory (config file or JSXCACHE_DIR)
//  2. node_modules/.cache/jsxcache below the nearest directory holding package.json
//  3. the temporary directory
type Locator struct {
	cwd      string
	cacheDir string
	tempDir  string
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithTempDir overrides the temporary directory used as the terminal fallback.
func WithTempDir(dir string) LocatorOption {
	return func(l *Locator) {
		l.tempDir = dir
	}
}

// NewLocator creates a Locator for the given configuration.
func NewLocator(cfg *domain.Config, opts ...LocatorOption) *Locator {
	l := &Locator{
		cwd:      cfg.Root,
		cacheDir: cfg.CacheDir,
		tempDir:  os.TempDir(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the starting cache directory.
func (l *Locator) Locate() string {
	if l.cacheDir != "" {
		if filepath.IsAbs(l.cacheDir) {
			return filepath.Clean(l.cacheDir)
		}
		return filepath.Join(l.cwd, l.cacheDir)
	}

	if root, ok := FindProjectRoot(l.cwd); ok {
		return domain.ProjectCachePath(root)
	}

	return l.tempDir
}

// TempDir returns the terminal fallback directory.
func (l *Locator) TempDir() string {
	return l.tempDir
}

// FindProjectRoot walks up from dir to the nearest directory containing package.json.
func FindProjectRoot(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}

	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		marker := filepath.Join(currentDir, domain.ProjectMarker)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}
