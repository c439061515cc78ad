package app

import (
	"context"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// LoadOptions configures Load.
type LoadOptions struct {
	// BaseDir is the directory module ids are resolved from. Defaults to the working directory.
	BaseDir string
	// NoCache bypasses the memo layer and the entry store for this call.
	NoCache bool
	// Options replace the configured transformer options when non-nil.
	Options domain.Options
	// Passthrough returns the untransformed source when the transform fails.
	Passthrough bool
	// ConfigPath selects an explicit config file.
	ConfigPath string
}

// LoadFunc loads a module with preset options.
type LoadFunc func(ctx context.Context, moduleID string) (string, error)

// Load resolves moduleID, reads it and returns its transformed source.
func (a *App) Load(ctx context.Context, moduleID string, opts LoadOptions) (string, error) {
	if moduleID == "" {
		return "", domain.ErrInvalidModuleID
	}

	s, err := a.session(opts.ConfigPath)
	if err != nil {
		return "", err
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	baseDir, err = absPath(baseDir)
	if err != nil {
		return "", err
	}

	path, err := a.resolver.Resolve(moduleID, baseDir)
	if err != nil {
		return "", err
	}

	source, err := readSource(path)
	if err != nil {
		return "", err
	}

	output, err := s.coordinator.Compute(ctx, s.request(path, path, source, opts.Options), s.cacheEnabled(opts.NoCache))
	if err != nil {
		if !opts.Passthrough {
			return "", err
		}
		a.logger.Error(zerr.With(zerr.Wrap(err, "transform failed, loading source unmodified"), "path", path))
		return source, nil
	}

	return output, nil
}

// Loader returns a LoadFunc bound to opts.
func (a *App) Loader(opts LoadOptions) LoadFunc {
	return func(ctx context.Context, moduleID string) (string, error) {
		return a.Load(ctx, moduleID, opts)
	}
}
