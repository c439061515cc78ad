// Package domain contains the core types of the transform cache.
package domain

import (
	"maps"
	"time"
)

// Options is the caller configuration that affects transformer output.
// The cache never interprets it beyond hashing it and handing it to the transformer.
type Options map[string]any

// Clone returns a shallow copy of the options.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// Request is the unit of work submitted to the cache coordinator.
type Request struct {
	// Source is the raw input to transform.
	Source string
	// Options is the configuration that affects the output.
	Options Options
	// ToolVersion identifies the transform logic. Changing it changes every key.
	ToolVersion string
	// Identity is a stable logical key, usually the resolved module path.
	// Only the memo layer uses it; the disk store is keyed by content.
	Identity string
	// Filename is handed to the transformer for diagnostics. It is not part of the key.
	Filename string
	// Encoding selects how the entry is persisted.
	Encoding Encoding
}

// Key derives the cache key for the request.
func (r *Request) Key() (CacheKey, error) {
	return DeriveKey(r.Source, r.Options, r.ToolVersion, r.Encoding)
}

// EntryInfo describes a persisted entry found by listing a cache directory.
type EntryInfo struct {
	Key     CacheKey
	Path    string
	Size    int64
	ModTime time.Time
}
