// Package memo implements the in-process memo layer keyed by module identity.
package memo

import (
	"sync"
	"unique"

	"go.trai.ch/jsxcache/internal/core/ports"
)

var _ ports.Memo = (*Memo)(nil)

// Memo implements ports.Memo with a map held for the lifetime of the process.
// Identities are interned since the same resolved paths are looked up repeatedly.
type Memo struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]]string
}

// New creates an empty Memo.
func New() *Memo {
	return &Memo{
		entries: make(map[unique.Handle[string]]string),
	}
}

// Get returns the output stored for identity.
func (m *Memo) Get(identity string) (string, bool) {
	if identity == "" {
		return "", false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	output, ok := m.entries[unique.Make(identity)]
	return output, ok
}

// Put stores output for identity. An empty identity is ignored.
func (m *Memo) Put(identity, output string) {
	if identity == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[unique.Make(identity)] = output
}

// Len returns the number of memoized identities.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
