package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxcache/internal/adapters/shell"
	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rewrite.sh")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

func TestTransformer_Transform(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	script := writeScript(t, `tr 'a-z' 'A-Z'`)
	transformer := shell.NewTransformer([]string{script}, mockLogger)

	got, err := transformer.Transform(context.Background(), "h('div')", nil, "/project/app.js")
	require.NoError(t, err)
	assert.Equal(t, "H('DIV')", got)
}

func TestTransformer_Transform_Environment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	script := writeScript(t, `printf '%s|%s|%s' "$JSXCACHE_OPTIONS" "$JSXCACHE_FILENAME" "$1"`)
	transformer := shell.NewTransformer([]string{script, "--sourcefile={filename}"}, mockLogger)

	opts := domain.Options{"pragma": "h", "pragmaFrag": "Fragment"}
	got, err := transformer.Transform(context.Background(), "", opts, "/project/app.jsx")
	require.NoError(t, err)
	assert.Equal(t, `{"pragma":"h","pragmaFrag":"Fragment"}|/project/app.jsx|--sourcefile=/project/app.jsx`, got)
}

func TestTransformer_Transform_WarningsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("deprecated pragma").Times(1)

	script := writeScript(t, "echo 'deprecated pragma' >&2\ncat\n")
	transformer := shell.NewTransformer([]string{script}, mockLogger)

	got, err := transformer.Transform(context.Background(), "x", nil, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestTransformer_Transform_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	script := writeScript(t, "echo \"$JSXCACHE_FILENAME: Unexpected token (1:5)\" >&2\nexit 3\n")
	transformer := shell.NewTransformer([]string{script}, mockLogger)

	_, err := transformer.Transform(context.Background(), "<div", nil, "/project/syntax-error.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/project/syntax-error.js: Unexpected token (1:5)")
}

func TestTransformer_Transform_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := shell.NewTransformer(nil, mocks.NewMockLogger(ctrl))

	_, err := transformer.Transform(context.Background(), "x", nil, "a.js")
	require.ErrorIs(t, err, domain.ErrTransformerNotConfigured)
}
