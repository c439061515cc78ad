package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxcache/internal/adapters/fs"
	"go.trai.ch/jsxcache/internal/core/domain"
)

func TestResolver_Resolve(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "react.js"), "React")
	writeFile(t, filepath.Join(base, "jsx-ext.jsx"), "<div/>")
	writeFile(t, filepath.Join(base, "widgets", "index.js"), "<w/>")
	writeFile(t, filepath.Join(base, "exact.txt"), "x")

	resolver := fs.NewResolver()

	tests := []struct {
		name     string
		moduleID string
		want     string
	}{
		{name: "exact file", moduleID: "exact.txt", want: filepath.Join(base, "exact.txt")},
		{name: "js extension", moduleID: "react", want: filepath.Join(base, "react.js")},
		{name: "jsx extension", moduleID: "./jsx-ext", want: filepath.Join(base, "jsx-ext.jsx")},
		{name: "index file", moduleID: "widgets", want: filepath.Join(base, "widgets", "index.js")},
		{name: "absolute id", moduleID: filepath.Join(base, "react"), want: filepath.Join(base, "react.js")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.moduleID, base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Resolve_Errors(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.Resolve("", t.TempDir())
	require.ErrorIs(t, err, domain.ErrInvalidModuleID)

	_, err = resolver.Resolve("missing", t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrModuleNotFound.Error())
}
