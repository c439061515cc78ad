package coordinator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxcache/internal/adapters/cas"
	"go.trai.ch/jsxcache/internal/adapters/memo"
	"go.trai.ch/jsxcache/internal/adapters/telemetry"
	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports/mocks"
	"go.trai.ch/jsxcache/internal/engine/coordinator"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	transformer *mocks.MockTransformer
	locator     *mocks.MockDirectoryLocator
	logger      *mocks.MockLogger
	memo        *memo.Memo
	coordinator *coordinator.Coordinator
	primary     string
	temp        string
}

func newFixture(t *testing.T, primary, temp string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		transformer: mocks.NewMockTransformer(ctrl),
		locator:     mocks.NewMockDirectoryLocator(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		memo:        memo.New(),
		primary:     primary,
		temp:        temp,
	}
	f.locator.EXPECT().Locate().Return(primary).AnyTimes()
	f.locator.EXPECT().TempDir().Return(temp).AnyTimes()

	f.coordinator = coordinator.New(f.transformer, cas.NewStore(), f.memo, f.locator, f.logger, telemetry.NoOp{})
	return f
}

func newDefaultFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, filepath.Join(t.TempDir(), "cache"), t.TempDir())
}

// blockedDir returns a directory path that cannot be created because a regular file is in the way.
func blockedDir(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), domain.FilePerm))
	return filepath.Join(blocker, "cache")
}

func newRequest(source string) *domain.Request {
	return &domain.Request{
		Source:      source,
		Options:     domain.Options{"pragma": "h"},
		ToolVersion: "1.0.0",
		Filename:    "/project/app.jsx",
		Encoding:    domain.EncodingRaw,
	}
}

func entryPath(t *testing.T, dir string, req *domain.Request) string {
	t.Helper()
	key, err := req.Key()
	require.NoError(t, err)
	return filepath.Join(dir, key.Filename())
}

func echo(_ context.Context, source string, _ domain.Options, _ string) (string, error) {
	return source, nil
}

func TestCompute_Idempotent(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<div>hello</div>")

	f.transformer.EXPECT().
		Transform(gomock.Any(), req.Source, req.Options, req.Filename).
		Return(`h("div", null, "hello")`, nil).
		Times(1)

	first, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)

	second, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	data, err := os.ReadFile(entryPath(t, f.primary, req))
	require.NoError(t, err)
	assert.Equal(t, `h("div", null, "hello")`, string(data))
}

func TestCompute_DisabledNeverTouchesStorage(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<b/>")
	req.Identity = "/project/app.jsx"

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(echo).
		Times(2)

	for range 2 {
		out, err := f.coordinator.Compute(context.Background(), req, false)
		require.NoError(t, err)
		assert.Equal(t, "<b/>", out)
	}

	assert.NoDirExists(t, f.primary)
	assert.Equal(t, 0, f.memo.Len())
}

func TestCompute_TamperedEntryIsAuthoritative(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("For testing")

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(echo).
		Times(2)

	out, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, "For testing", out)

	path := entryPath(t, f.primary, req)
	require.FileExists(t, path)
	require.NoError(t, os.WriteFile(path, []byte("For really testing"), domain.FilePerm))

	out, err = f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, "For really testing", out)

	out, err = f.coordinator.Compute(context.Background(), req, false)
	require.NoError(t, err)
	assert.Equal(t, "For testing", out)
}

func TestCompute_FallsBackToTempDir(t *testing.T) {
	f := newFixture(t, blockedDir(t), t.TempDir())
	req := newRequest("<p/>")

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(echo).
		Times(1)
	// Each call reports the unusable primary directory.
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	out, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, "<p/>", out)
	assert.FileExists(t, entryPath(t, f.temp, req))

	// The fallback entry serves the next call.
	out, err = f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, "<p/>", out)
}

func TestCompute_TerminalStorageFailure(t *testing.T) {
	f := newFixture(t, blockedDir(t), blockedDir(t))
	req := newRequest("<p/>")

	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := f.coordinator.Compute(context.Background(), req, true)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorContains(t, err, "no usable cache directory")
}

func TestCompute_PrimaryIsTempDir(t *testing.T) {
	temp := blockedDir(t)
	f := newFixture(t, temp, temp)

	_, err := f.coordinator.Compute(context.Background(), newRequest("x"), true)
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestCompute_TransformErrorPropagatesVerbatim(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<div")
	transformErr := errors.New("/project/app.jsx: Unexpected token (1:5)")

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", transformErr).
		Times(1)

	_, err := f.coordinator.Compute(context.Background(), req, true)
	require.Error(t, err)
	assert.Equal(t, transformErr, err)
	assert.NotErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NoFileExists(t, entryPath(t, f.primary, req))
}

func TestCompute_MemoShortCircuitsDisk(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<i/>")
	req.Identity = "/project/app.jsx"

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(echo).
		Times(1)

	_, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(f.primary))

	out, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, "<i/>", out)
	assert.NoDirExists(t, f.primary)
}

func TestCompute_PersistFailureStillReturnsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := mocks.NewMockTransformer(ctrl)
	store := mocks.NewMockEntryStore(ctrl)
	locator := mocks.NewMockDirectoryLocator(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	locator.EXPECT().Locate().Return("/primary")
	locator.EXPECT().TempDir().Return("/tmp")
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).Times(2)
	store.EXPECT().Prepare(gomock.Any()).Return(nil).Times(2)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrCacheWriteFailed).Times(2)
	transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("result", nil).
		Times(1)
	logger.EXPECT().Warn(gomock.Any()).Times(2)

	c := coordinator.New(transformer, store, memo.New(), locator, logger, telemetry.NoOp{})
	out, err := c.Compute(context.Background(), newRequest("src"), true)
	require.NoError(t, err)
	assert.Equal(t, "result", out)
}

func TestCompute_RecordEncoding(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<a/>")
	req.Encoding = domain.EncodingRecord

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`h("a")`, nil).
		Times(1)

	for range 2 {
		out, err := f.coordinator.Compute(context.Background(), req, true)
		require.NoError(t, err)
		assert.Equal(t, `h("a")`, out)
	}

	path := entryPath(t, f.primary, req)
	assert.Equal(t, ".json", filepath.Ext(path))
	assert.FileExists(t, path)
}

func TestCompute_CorruptRecordIsMiss(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<a/>")
	req.Encoding = domain.EncodingRecord

	path := entryPath(t, f.primary, req)
	require.NoError(t, os.MkdirAll(f.primary, domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`h("a")`, nil).
		Times(1)

	out, err := f.coordinator.Compute(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, `h("a")`, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := domain.DecodeEntry(domain.EncodingRecord, data)
	require.NoError(t, err)
	assert.Equal(t, `h("a")`, got)
}

func TestCompute_ConcurrentCallsShareOneTransform(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("<ul/>")

	f.transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(echo).
		Times(1)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Go(func() {
			out, err := f.coordinator.Compute(context.Background(), req, true)
			assert.NoError(t, err)
			results[i] = out
		})
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, "<ul/>", out)
	}
}

func TestCompute_KeyDerivationError(t *testing.T) {
	f := newDefaultFixture(t)
	req := newRequest("x")
	req.Options = domain.Options{"fn": func() {}}

	_, err := f.coordinator.Compute(context.Background(), req, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrKeyDerivationFailed.Error())
}

func TestCompute_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := mocks.NewMockTransformer(ctrl)
	locator := mocks.NewMockDirectoryLocator(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	primary := filepath.Join(t.TempDir(), "cache")
	locator.EXPECT().Locate().Return(primary)
	locator.EXPECT().TempDir().Return(t.TempDir()).AnyTimes()
	transformer.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echo)

	tel.EXPECT().Record(gomock.Any(), "transform /project/app.jsx").
		Return(context.Background(), vertex).
		Times(2)
	gomock.InOrder(
		vertex.EXPECT().Complete(nil),
		vertex.EXPECT().Cached(),
		vertex.EXPECT().Complete(nil),
	)

	c := coordinator.New(transformer, cas.NewStore(), memo.New(), locator, mocks.NewMockLogger(ctrl), tel)
	req := newRequest("<x/>")
	for range 2 {
		_, err := c.Compute(context.Background(), req, true)
		require.NoError(t, err)
	}
}

func TestDirectory_ResolvedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockDirectoryLocator(ctrl)
	locator.EXPECT().Locate().Return("/project/node_modules/.cache/jsxcache").Times(1)

	c := coordinator.New(nil, nil, nil, locator, nil, telemetry.NoOp{})
	assert.Equal(t, "/project/node_modules/.cache/jsxcache", c.Directory())
	assert.Equal(t, "/project/node_modules/.cache/jsxcache", c.Directory())
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		temp    string
		want    []string
	}{
		{"distinct", "/project/cache", "/tmp", []string{"/project/cache", "/tmp"}},
		{"same", "/tmp", "/tmp", []string{"/tmp"}},
		{"unclean same", "/tmp/", "/tmp", []string{"/tmp"}},
		{"empty primary", "", "/tmp", []string{"/tmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coordinator.Candidates(tt.primary, tt.temp))
		})
	}
}
