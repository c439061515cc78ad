// Package app implements the application layer for jsxcache.
package app

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/jsxcache/internal/build"
	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/jsxcache/internal/engine/coordinator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	store          ports.EntryStore
	memo           ports.Memo
	resolver       ports.SourceResolver
	walker         ports.SourceWalker
	logger         ports.Logger
	telemetry      ports.Telemetry
	newTransformer ports.TransformerFactory
	newLocator     ports.LocatorFactory
	newWatcher     ports.WatcherFactory

	mu       sync.Mutex
	sessions map[string]*session
}

// session is the configuration and coordinator shared by every call using one config source.
type session struct {
	cfg         *domain.Config
	version     string
	scope       string
	coordinator *coordinator.Coordinator
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.EntryStore,
	memo ports.Memo,
	resolver ports.SourceResolver,
	walker ports.SourceWalker,
	log ports.Logger,
	telemetry ports.Telemetry,
	newTransformer ports.TransformerFactory,
	newLocator ports.LocatorFactory,
	newWatcher ports.WatcherFactory,
) *App {
	return &App{
		configLoader:   loader,
		store:          store,
		memo:           memo,
		resolver:       resolver,
		walker:         walker,
		logger:         log,
		telemetry:      telemetry,
		newTransformer: newTransformer,
		newLocator:     newLocator,
		newWatcher:     newWatcher,
		sessions:       make(map[string]*session),
	}
}

// session returns the session for configPath, loading it on first use.
// An empty configPath discovers the config file from the working directory.
func (a *App) session(configPath string) (*session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.sessions[configPath]; ok {
		return s, nil
	}

	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	transformer := a.newTransformer(cfg.Transformer)
	version := ToolVersion(cfg.Transformer)
	s := &session{
		cfg:     cfg,
		version: version,
		scope:   memoScope(configPath, version),
		coordinator: coordinator.New(
			transformer,
			a.store,
			a.memo,
			a.newLocator(cfg),
			a.logger,
			a.telemetry,
		),
	}
	a.sessions[configPath] = s
	return s, nil
}

func (a *App) loadConfig(configPath string) (*domain.Config, error) {
	if configPath != "" {
		return a.configLoader.LoadFile(configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	return a.configLoader.Load(cwd)
}

// ToolVersion identifies the transform logic: the jsxcache version and the transformer command.
func ToolVersion(command []string) string {
	return build.Version + "+" + strings.Join(command, " ")
}

// memoScope qualifies memo identities so sessions sharing the memo never serve each other's outputs.
func memoScope(configPath, version string) string {
	return configPath + "\x00" + version + "\x00"
}

// request builds the cache request for the file at path.
// Options override the configured options; the memo identity is only used with the configured ones.
// An empty identity skips the memo layer.
func (s *session) request(identity, path, source string, opts domain.Options) *domain.Request {
	if identity != "" {
		identity = s.scope + identity
	}
	req := &domain.Request{
		Source:      source,
		Options:     s.cfg.Options,
		ToolVersion: s.version,
		Identity:    identity,
		Filename:    path,
		Encoding:    s.cfg.Encoding,
	}
	if opts != nil {
		req.Options = opts
		req.Identity = ""
	}
	return req
}

func (s *session) cacheEnabled(noCache bool) bool {
	return s.cfg.Cache && !noCache
}

func readSource(path string) (string, error) {
	//nolint:gosec // path is resolved from user input by design
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}
	return abs, nil
}
