package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements ports.SourceResolver.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the absolute path of moduleID relative to baseDir.
// It tries the path itself, then each source extension, then an index file inside it.
func (r *Resolver) Resolve(moduleID, baseDir string) (string, error) {
	if moduleID == "" {
		return "", domain.ErrInvalidModuleID
	}

	path := moduleID
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	for _, candidate := range candidates(path) {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrModuleNotFound.Error()), "path", candidate)
		}
		return abs, nil
	}

	return "", zerr.With(zerr.With(domain.ErrModuleNotFound, "module", moduleID), "base_dir", baseDir)
}

func candidates(path string) []string {
	result := make([]string, 0, 1+2*len(domain.SourceExtensions))
	result = append(result, path)
	for _, ext := range domain.SourceExtensions {
		result = append(result, path+ext)
	}
	for _, ext := range domain.SourceExtensions {
		result = append(result, filepath.Join(path, "index"+ext))
	}
	return result
}
