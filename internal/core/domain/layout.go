package domain

import (
	"path/filepath"
	"slices"
)

const (
	// ToolName is the name used for the cache directory and environment variables.
	ToolName = "jsxcache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "jsxcache.yaml"

	// ProjectMarker is the file that marks a project root during cache directory discovery.
	ProjectMarker = "package.json"

	// NodeModulesDirName is the name of the package installation directory.
	NodeModulesDirName = "node_modules"

	// CacheDirName is the name of the shared cache directory inside node_modules.
	CacheDirName = ".cache"

	// EnvCache toggles caching. Absent or empty means enabled.
	EnvCache = "JSXCACHE_CACHE"

	// EnvCacheDir overrides the cache directory.
	EnvCacheDir = "JSXCACHE_DIR"

	// EnvOptions carries the canonical options to the transformer command.
	EnvOptions = "JSXCACHE_OPTIONS"

	// EnvFilename carries the module path to the transformer command.
	EnvFilename = "JSXCACHE_FILENAME"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SourceExtensions are the extensions of transformable sources, in resolution order.
var SourceExtensions = []string{".js", ".jsx"}

// IsSource reports whether path has a source extension.
func IsSource(path string) bool {
	return slices.Contains(SourceExtensions, filepath.Ext(path))
}

// ProjectCachePath returns the cache directory for a project rooted at root.
// It joins node_modules, .cache and the tool name.
func ProjectCachePath(root string) string {
	return filepath.Join(root, NodeModulesDirName, CacheDirName, ToolName)
}
