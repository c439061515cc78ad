package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/jsxcache/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the watcher adapter
	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
)

// watch re-transforms sources below roots whenever they change, until ctx ends.
func (a *App) watch(ctx context.Context, s *session, roots []input, excluded exclusions, opts RunOptions) error {
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, dir := range watchDirs(roots) {
		if err := w.Start(ctx, dir); err != nil {
			return err
		}
	}

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range w.Events() {
			if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
				continue
			}
			if !domain.IsSource(event.Path) || excluded.match(event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			targets := matchTargets(roots, paths)
			if len(targets) == 0 {
				continue
			}
			// Sources changed on disk, so memoized outputs are stale.
			if err := a.transformTargets(ctx, s, targets, opts, false); err != nil {
				a.logger.Error(err)
				continue
			}
			a.logger.Info("transformed " + describeTargets(targets))
		}
	}
}

// watchDirs returns the directories to watch: directory inputs and the parents of file inputs.
func watchDirs(roots []input) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, root := range roots {
		dir := root.path
		if !root.isDir {
			dir = filepath.Dir(root.path)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// matchTargets maps changed paths back to the inputs that cover them.
func matchTargets(roots []input, paths []string) []target {
	var targets []target
	for _, path := range paths {
		for _, root := range roots {
			if !root.isDir {
				if root.path == path {
					targets = append(targets, target{path: path, rel: filepath.Base(path)})
					break
				}
				continue
			}
			if within(root.path, path) {
				rel, err := filepath.Rel(root.path, path)
				if err != nil {
					continue
				}
				targets = append(targets, target{path: path, rel: rel})
				break
			}
		}
	}
	return targets
}

// exclusions are the paths jsxcache writes to, which are never treated as inputs.
type exclusions struct {
	outDir   string
	cacheDir string
}

func (e exclusions) match(path string) bool {
	return within(e.outDir, path) || filepath.Dir(path) == e.cacheDir
}

// within reports whether path is below dir.
func within(dir, path string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
