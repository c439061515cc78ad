package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheMiss is returned when a requested entry is not present in the cache.
	// It is a control-flow outcome, never surfaced to callers of the coordinator.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrKeyDerivationFailed is returned when the request options cannot be serialized canonically.
	ErrKeyDerivationFailed = zerr.New("failed to derive cache key")

	// ErrCacheDirCreateFailed is returned when a cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when an entry cannot be written to the cache directory.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheListFailed is returned when the cache directory cannot be listed.
	ErrCacheListFailed = zerr.New("failed to list cache directory")

	// ErrCacheRemoveFailed is returned when an entry cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove cache entry")

	// ErrStorageUnavailable is returned when no candidate cache directory, including the
	// temporary directory, could be prepared for use.
	ErrStorageUnavailable = zerr.New("cache storage unavailable")

	// ErrEntryDecodeFailed is returned when a record entry cannot be decoded.
	ErrEntryDecodeFailed = zerr.New("failed to decode cache entry")

	// ErrEntryEncodeFailed is returned when a record entry cannot be encoded.
	ErrEntryEncodeFailed = zerr.New("failed to encode cache entry")

	// ErrUnknownEncoding is returned when an entry encoding name is not recognized.
	ErrUnknownEncoding = zerr.New("unknown entry encoding, expected 'raw' or 'record'")

	// ErrTransformerNotConfigured is returned when no transformer command is configured.
	ErrTransformerNotConfigured = zerr.New("transformer command not configured")

	// ErrInvalidModuleID is returned when a module id is empty.
	ErrInvalidModuleID = zerr.New("expected a module id")

	// ErrModuleNotFound is returned when a module id cannot be resolved to a file.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrSourceReadFailed is returned when a module source cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read module source")

	// ErrOutputWriteFailed is returned when a transformed output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write transformed output")

	// ErrNoInputsSpecified is returned when a batch run has no input files.
	ErrNoInputsSpecified = zerr.New("no input files specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
