// Package config provides the configuration loader for jsxcache.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds jsxcache.yaml by walking up from cwd and returns the resolved configuration.
// Without a config file the defaults rooted at cwd are used.
// The environment overrides the file.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, ok := findConfiguration(cwd)
	if !ok {
		cfg := domain.DefaultConfig(filepath.Clean(cwd))
		applyEnv(cfg)
		return cfg, nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at configPath.
func (l *Loader) LoadFile(configPath string) (*domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	enc, err := domain.ParseEncoding(file.Encoding)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := filepath.Dir(filepath.Clean(configPath))
	cfg := domain.DefaultConfig(root)
	cfg.Path = configPath
	cfg.Encoding = enc
	cfg.CacheDir = resolveDir(root, file.CacheDir)
	cfg.Transformer = file.Transformer.Command
	if file.Cache != nil {
		cfg.Cache = *file.Cache
	}
	if file.Options != nil {
		cfg.Options = file.Options
	}

	if file.Version == "" && l.Logger != nil {
		l.Logger.Warn("config file has no version: " + configPath)
	}

	applyEnv(cfg)
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && info.Mode().IsRegular() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func resolveDir(root, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by discovery or given by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
