package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxcache/cmd/jsxcache/commands"
	"go.trai.ch/jsxcache/internal/app"
	"go.trai.ch/jsxcache/internal/build"
	"go.trai.ch/jsxcache/internal/core/domain"
)

type mockApp struct {
	transformFunc func(ctx context.Context, inputs []string, opts app.RunOptions) error
	loadFunc      func(ctx context.Context, moduleID string, opts app.LoadOptions) (string, error)
	entries       []domain.EntryInfo
	removed       int
	configPath    string
	jsonLogs      bool
	err           error
}

func (m *mockApp) Transform(ctx context.Context, inputs []string, opts app.RunOptions) error {
	if m.transformFunc != nil {
		return m.transformFunc(ctx, inputs, opts)
	}
	return nil
}

func (m *mockApp) Load(ctx context.Context, moduleID string, opts app.LoadOptions) (string, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, moduleID, opts)
	}
	return "", nil
}

func (m *mockApp) Key(path, configPath string) (domain.CacheKey, error) {
	m.configPath = configPath
	if m.err != nil {
		return domain.CacheKey{}, m.err
	}
	return domain.DeriveKey(path, nil, "test", domain.EncodingRaw)
}

func (m *mockApp) Dir(configPath string) (string, error) {
	m.configPath = configPath
	return "/cache", m.err
}

func (m *mockApp) List(configPath string) ([]domain.EntryInfo, error) {
	m.configPath = configPath
	return m.entries, m.err
}

func (m *mockApp) Clean(configPath string) (int, error) {
	m.configPath = configPath
	return m.removed, m.err
}

func (m *mockApp) SetLogJSON(enable bool) {
	m.jsonLogs = enable
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Transform(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedInputs []string

		mock := &mockApp{
			transformFunc: func(_ context.Context, inputs []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedInputs = inputs
				return nil
			},
		}

		_, err := execute(t, mock, "transform", "src", "lib/a.jsx",
			"--no-cache", "--out-dir", "dist", "--passthrough", "-j", "3", "--watch", "-c", "custom.yaml", "--json")
		require.NoError(t, err)

		assert.Equal(t, []string{"src", "lib/a.jsx"}, capturedInputs)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, "dist", capturedOpts.OutDir)
		assert.True(t, capturedOpts.Passthrough)
		assert.Equal(t, 3, capturedOpts.Parallelism)
		assert.True(t, capturedOpts.Watch)
		assert.Equal(t, "custom.yaml", capturedOpts.ConfigPath)
		assert.NotNil(t, capturedOpts.Output)
		assert.True(t, mock.jsonLogs)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			transformFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "transform", "a.jsx")
		require.ErrorContains(t, err, "simulated error")
	})

	t.Run("shows usage when no inputs provided", func(t *testing.T) {
		mock := &mockApp{
			transformFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "transform")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Load(t *testing.T) {
	var capturedID string
	var capturedOpts app.LoadOptions
	mock := &mockApp{
		loadFunc: func(_ context.Context, moduleID string, opts app.LoadOptions) (string, error) {
			capturedID = moduleID
			capturedOpts = opts
			return "transformed", nil
		},
	}

	out, err := execute(t, mock, "load", "./app", "--base-dir", "src", "--no-cache", "--passthrough")
	require.NoError(t, err)
	assert.Equal(t, "transformed", out)
	assert.Equal(t, "./app", capturedID)
	assert.Equal(t, app.LoadOptions{BaseDir: "src", NoCache: true, Passthrough: true}, capturedOpts)

	_, err = execute(t, mock, "load")
	require.Error(t, err)
}

func TestCommands_Key(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "key", "app.jsx", "--config", "c.yaml")
	require.NoError(t, err)

	want, err := domain.DeriveKey("app.jsx", nil, "test", domain.EncodingRaw)
	require.NoError(t, err)
	assert.Equal(t, want.Filename()+"\n", out)
	assert.Equal(t, "c.yaml", mock.configPath)
}

func TestCommands_Dir(t *testing.T) {
	out, err := execute(t, &mockApp{}, "dir")
	require.NoError(t, err)
	assert.Equal(t, "/cache\n", out)
}

func TestCommands_List(t *testing.T) {
	key := domain.CacheKey{Hash: "0123456789abcdef", Encoding: domain.EncodingRecord}
	mock := &mockApp{entries: []domain.EntryInfo{{Key: key, Size: 42}}}

	out, err := execute(t, mock, "ls")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef.json\t42\n", out)
}

func TestCommands_Clean(t *testing.T) {
	out, err := execute(t, &mockApp{removed: 3}, "clean")
	require.NoError(t, err)
	assert.Equal(t, "removed 3 entries\n", out)

	_, err = execute(t, &mockApp{err: errors.New("boom")}, "clean")
	require.ErrorContains(t, err, "boom")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "jsxcache version "+build.Version+"\n", out)
}

func TestRoot_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "transform")
	assert.Contains(t, out, "clean")
}
