package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// RunOptions configures Transform.
type RunOptions struct {
	// NoCache bypasses the memo layer and the entry store.
	NoCache bool
	// OutDir receives one output file per input. Empty writes every output to Output.
	OutDir string
	// Output receives the outputs when OutDir is empty.
	Output io.Writer
	// Passthrough writes the untransformed source for inputs that fail to transform.
	Passthrough bool
	// Parallelism bounds concurrent transforms. Zero uses the number of CPUs.
	Parallelism int
	// ConfigPath selects an explicit config file.
	ConfigPath string
	// Watch keeps running and re-transforms changed sources.
	Watch bool
}

// target is one source file and its path relative to the input it was found in.
type target struct {
	path string
	rel  string
}

// Transform runs every source file named by inputs through the cache.
// Directories are searched recursively for sources.
func (a *App) Transform(ctx context.Context, inputs []string, opts RunOptions) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputsSpecified
	}

	s, err := a.session(opts.ConfigPath)
	if err != nil {
		return err
	}

	roots, err := a.resolveInputs(inputs)
	if err != nil {
		return err
	}

	if opts.OutDir != "" {
		if opts.OutDir, err = absPath(opts.OutDir); err != nil {
			return err
		}
	}
	excluded := exclusions{outDir: opts.OutDir, cacheDir: s.coordinator.Directory()}

	targets := a.collect(roots, excluded)
	err = a.transformTargets(ctx, s, targets, opts, true)
	if !opts.Watch {
		return err
	}
	if err != nil {
		a.logger.Error(err)
	}

	return a.watch(ctx, s, roots, excluded, opts)
}

// input is an absolute input path and whether it is a directory.
type input struct {
	path  string
	isDir bool
}

func (a *App) resolveInputs(inputs []string) ([]input, error) {
	roots := make([]input, 0, len(inputs))
	for _, in := range inputs {
		abs, err := absPath(in)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleNotFound.Error()), "path", in)
		}
		roots = append(roots, input{path: abs, isDir: info.IsDir()})
	}
	return roots, nil
}

// collect expands roots into source files. Files below an excluded directory are skipped.
func (a *App) collect(roots []input, excluded exclusions) []target {
	seen := make(map[string]bool)
	var targets []target

	add := func(t target) {
		if seen[t.path] {
			return
		}
		seen[t.path] = true
		targets = append(targets, t)
	}

	for _, root := range roots {
		if !root.isDir {
			add(target{path: root.path, rel: filepath.Base(root.path)})
			continue
		}
		for path := range a.walker.WalkSources(root.path, nil) {
			rel, err := filepath.Rel(root.path, path)
			if err != nil {
				rel = filepath.Base(path)
			}
			if excluded.match(path) {
				continue
			}
			add(target{path: path, rel: rel})
		}
	}

	return targets
}

// transformTargets runs targets through the scheduler and writes their outputs.
// useMemo keys requests by path so the memo layer can serve them within this process.
func (a *App) transformTargets(ctx context.Context, s *session, targets []target, opts RunOptions, useMemo bool) error {
	jobs := make([]scheduler.Job, 0, len(targets))
	for _, t := range targets {
		source, err := readSource(t.path)
		if err != nil {
			return err
		}
		identity := ""
		if useMemo {
			identity = t.path
		}
		jobs = append(jobs, scheduler.Job{
			Path:         t.path,
			Request:      s.request(identity, t.path, source, nil),
			CacheEnabled: s.cacheEnabled(opts.NoCache),
		})
	}

	results, runErr := scheduler.New(s.coordinator).Run(ctx, jobs, opts.Parallelism)
	if opts.Passthrough && ctx.Err() == nil {
		runErr = nil
	}

	var errs error
	for i, res := range results {
		output := res.Output
		if res.Err != nil {
			if !opts.Passthrough || ctx.Err() != nil {
				continue
			}
			a.logger.Error(zerr.With(zerr.Wrap(res.Err, "transform failed, writing source unmodified"), "path", res.Path))
			output = jobs[i].Request.Source
		}
		if err := writeOutput(targets[i], output, opts); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errors.Join(runErr, errs)
}

func writeOutput(t target, output string, opts RunOptions) error {
	if opts.OutDir == "" {
		w := opts.Output
		if w == nil {
			w = os.Stdout
		}
		if _, err := io.WriteString(w, output); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", t.path)
		}
		return nil
	}

	dest := filepath.Join(opts.OutDir, OutputName(t.rel))
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dest)
	}
	if err := os.WriteFile(dest, []byte(output), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dest)
	}
	return nil
}

// OutputName maps a source path to its output path: .jsx becomes .js.
func OutputName(rel string) string {
	if filepath.Ext(rel) == ".jsx" {
		return strings.TrimSuffix(rel, ".jsx") + ".js"
	}
	return rel
}

func describeTargets(targets []target) string {
	if len(targets) == 1 {
		return targets[0].rel
	}
	return fmt.Sprintf("%d files", len(targets))
}
