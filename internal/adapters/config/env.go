package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jsxcache/internal/core/domain"
)

// ParseToggle reports whether a toggle value enables the feature.
// Absent or empty values enable it; 0, false, off and no disable it.
func ParseToggle(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

// CacheEnabledFromEnv reads the JSXCACHE_CACHE toggle.
func CacheEnabledFromEnv() bool {
	return ParseToggle(os.Getenv(domain.EnvCache))
}

// applyEnv overlays the environment on cfg.
func applyEnv(cfg *domain.Config) {
	if !CacheEnabledFromEnv() {
		cfg.Cache = false
	}
	if dir := os.Getenv(domain.EnvCacheDir); dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		cfg.CacheDir = dir
	}
}
