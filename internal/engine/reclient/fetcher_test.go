package reclient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports/mocks"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/engine/reclient"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cfgsDir = "/src/buildtools/reclient_cfgs"

type fixture struct {
	log       *mocks.MockLogger
	ensurer   *mocks.MockPackageEnsurer
	revisions *mocks.MockRevisionReader
	clang     *mocks.MockClangVersionReader
	fs        *mocks.MockFileSystem
	store     *mocks.MockFetchStateStore
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	fetcher   *reclient.Fetcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		log:       mocks.NewMockLogger(ctrl),
		ensurer:   mocks.NewMockPackageEnsurer(ctrl),
		revisions: mocks.NewMockRevisionReader(ctrl),
		clang:     mocks.NewMockClangVersionReader(ctrl),
		fs:        mocks.NewMockFileSystem(ctrl),
		store:     mocks.NewMockFetchStateStore(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
	}
	f.fetcher = reclient.NewFetcher(f.log, f.ensurer, f.revisions, f.clang, f.fs, f.store, f.telemetry)

	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, f.vertex
		}).AnyTimes()
	f.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	return f
}

func baseOptions() reclient.Options {
	return reclient.Options{
		RBEProject:        "rbe-chromium-untrusted",
		CipdPrefix:        domain.DefaultCipdPrefix,
		CfgsDir:           cfgsDir,
		ClangUpdateScript: "/src/tools/clang/scripts/update.py",
		NaClDir:           "/src/native_client",
		PythonVersion:     domain.DefaultPythonVersion,
	}
}

// expectNoWinCross makes every toolchain have an existing win-cross destination and no source cfgs.
func (f *fixture) expectNoWinCross() {
	f.fs.EXPECT().Exists(gomock.Any()).DoAndReturn(func(p string) bool {
		return p == cfgsDir+"/win-cross/chromium-browser-clang" ||
			p == cfgsDir+"/win-cross/nacl" ||
			p == cfgsDir+"/win-cross/python"
	}).AnyTimes()
}

func TestFetcher_Run_MissingProject(t *testing.T) {
	f := newFixture(t)
	f.log.EXPECT().Warn("RBE project is not specified")

	opts := baseOptions()
	opts.RBEProject = ""

	report, err := f.fetcher.Run(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, domain.ErrRBEProjectNotSpecified)
	for _, o := range report {
		assert.Equal(t, domain.SyncStatusPending, o.Status)
	}
}

func TestFetcher_Run_SkipsToolchainsWithoutRevision(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.NaClDir = ""

	f.clang.EXPECT().PackageVersion(opts.ClangUpdateScript).Return(mo.None[string](), nil)
	f.expectNoWinCross()

	gomock.InOrder(
		f.log.EXPECT().Info("fetch reclient_cfgs for RBE project rbe-chromium-untrusted..."),
		f.log.EXPECT().Info("failed to detect chromium-browser-clang revision"),
		f.log.EXPECT().Info("failed to detect nacl revision"),
	)

	f.ensurer.EXPECT().Ensure(gomock.Any(), domain.EnsureRequest{
		Package: "infra_internal/rbe/reclient_cfgs/rbe-chromium-untrusted/python",
		Ref:     "revision/3.8.0",
		Root:    cfgsDir + "/python",
	}).Return("", nil)
	f.fs.EXPECT().Glob(gomock.Any(), gomock.Any()).Times(0)
	f.store.EXPECT().Get(cfgsDir+"/.fetch_state.json", "python").Return(nil, nil)
	f.store.EXPECT().Put(cfgsDir+"/.fetch_state.json", domain.FetchRecord{
		Toolchain: "python",
		Package:   "infra_internal/rbe/reclient_cfgs/rbe-chromium-untrusted/python",
		Ref:       "revision/3.8.0",
	}).Return(nil)

	report, err := f.fetcher.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusSkipped, report.StatusOf(domain.ToolchainClang))
	assert.Equal(t, domain.SyncStatusSkipped, report.StatusOf(domain.ToolchainNaCl))
	assert.Equal(t, domain.SyncStatusCompleted, report.StatusOf(domain.ToolchainPython))
}

func TestFetcher_Run_StopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = "llvmorg-18-init-1-abc-1"
	opts.Quiet = true

	f.fs.EXPECT().Exists("/src/native_client").Return(true)
	f.revisions.EXPECT().LastCommit(gomock.Any(), "/src/native_client").Return("deadbeef", nil)
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()

	ensureErr := errors.Join(domain.ErrCipdEnsureFailed, errors.New("exit status 1"))
	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.EnsureRequest) (string, error) {
			assert.Equal(t, "revision/llvmorg-18-init-1-abc-1", req.Ref)
			assert.True(t, req.Quiet)
			return "Error: no such ref\n", ensureErr
		}).Times(1)
	f.log.EXPECT().Warn("Error: no such ref\n")

	report, err := f.fetcher.Run(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, domain.ErrCipdEnsureFailed)
	assert.Equal(t, domain.SyncStatusFailed, report.StatusOf(domain.ToolchainClang))
	assert.Equal(t, domain.SyncStatusPending, report.StatusOf(domain.ToolchainNaCl))
	assert.Equal(t, domain.SyncStatusPending, report.StatusOf(domain.ToolchainPython))
}

func TestFetcher_Run_FailureWithoutOutputWarnsError(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = "r1"

	f.expectNoWinCross()
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()

	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("  \n", errors.New("cipd not found"))
	f.log.EXPECT().Warn("cipd not found")

	_, err := f.fetcher.Run(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_Run_CopiesWinCrossCfgs(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.NaClDir = ""
	opts.PythonVersion = ""

	f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.Some("llvmorg-1"), nil)
	f.log.EXPECT().Info("fetch reclient_cfgs for RBE project rbe-chromium-untrusted...")
	f.log.EXPECT().Info("failed to detect nacl revision")
	f.log.EXPECT().Info("failed to detect python revision")

	root := cfgsDir + "/chromium-browser-clang"
	dest := cfgsDir + "/win-cross/chromium-browser-clang"

	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", nil)
	f.fs.EXPECT().Exists(dest).Return(false)
	f.fs.EXPECT().MkdirAll(dest, domain.DirPerm).Return(nil)
	f.fs.EXPECT().Exists(root + "/win-cross").Return(true)
	f.fs.EXPECT().Exists(root + "/win-cross-experiments").Return(true)

	gomock.InOrder(
		f.fs.EXPECT().Glob(root+"/win-cross", "*.cfg").Return([]string{root + "/win-cross/rewrapper_windows.cfg"}, nil),
		f.log.EXPECT().Info("Copy from "+root+"/win-cross/rewrapper_windows.cfg to "+dest+"/rewrapper_windows.cfg..."),
		f.fs.EXPECT().ReplaceFile(root+"/win-cross/rewrapper_windows.cfg", dest+"/rewrapper_windows.cfg").Return(nil),
		f.fs.EXPECT().Glob(root+"/win-cross-experiments", "*.cfg").Return([]string{
			root + "/win-cross-experiments/reproxy.cfg",
			root + "/win-cross-experiments/rewrapper_windows.cfg",
		}, nil),
		f.log.EXPECT().Info(gomock.Any()),
		f.fs.EXPECT().ReplaceFile(root+"/win-cross-experiments/reproxy.cfg", dest+"/reproxy.cfg").Return(nil),
		f.log.EXPECT().Info(gomock.Any()),
		f.fs.EXPECT().ReplaceFile(root+"/win-cross-experiments/rewrapper_windows.cfg", dest+"/rewrapper_windows.cfg").Return(nil),
	)

	f.store.EXPECT().Get(gomock.Any(), "chromium-browser-clang").Return(&domain.FetchRecord{
		Toolchain: "chromium-browser-clang",
		Package:   "infra_internal/rbe/reclient_cfgs/rbe-chromium-untrusted/chromium-browser-clang",
		Ref:       "revision/llvmorg-0",
	}, nil)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ string, rec domain.FetchRecord) error {
		assert.Equal(t, []string{
			"win-cross/chromium-browser-clang/rewrapper_windows.cfg",
			"win-cross/chromium-browser-clang/reproxy.cfg",
		}, rec.Cfgs)
		return nil
	})

	report, err := f.fetcher.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, report.StatusOf(domain.ToolchainClang))
	assert.Equal(t, "revision/llvmorg-1", report[0].Ref)
}

func TestFetcher_Run_CopyFailure(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = "r1"

	root := cfgsDir + "/chromium-browser-clang"
	copyErr := errors.New("permission denied")

	f.log.EXPECT().Info(gomock.Any()).AnyTimes()
	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", nil)
	f.fs.EXPECT().Exists(gomock.Any()).DoAndReturn(func(p string) bool {
		return p == root+"/win-cross" || p == cfgsDir+"/win-cross/chromium-browser-clang"
	}).AnyTimes()
	f.fs.EXPECT().Glob(root+"/win-cross", "*.cfg").Return([]string{root + "/win-cross/a.cfg"}, nil)
	f.fs.EXPECT().ReplaceFile(gomock.Any(), gomock.Any()).Return(copyErr)
	f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)

	report, err := f.fetcher.Run(context.Background(), opts)
	require.ErrorIs(t, err, copyErr)
	assert.NotErrorIs(t, err, domain.ErrFetchFailed)
	assert.Equal(t, domain.SyncStatusFailed, report.StatusOf(domain.ToolchainClang))
}

func TestFetcher_Run_StateWriteFailureOnlyWarns(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = ""
	opts.NaClDir = ""

	f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.None[string](), nil)
	f.expectNoWinCross()
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()
	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", nil)
	f.store.EXPECT().Get(gomock.Any(), "python").Return(nil, nil)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(domain.ErrStateWriteFailed)
	f.log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "failed to record fetch state for python")
	})

	report, err := f.fetcher.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, report.StatusOf(domain.ToolchainPython))
}

func TestFetcher_Run_UnchangedStateIsNotRewritten(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = ""
	opts.NaClDir = ""

	f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.None[string](), nil)
	f.expectNoWinCross()
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()
	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", nil)
	f.store.EXPECT().Get(cfgsDir+"/.fetch_state.json", "python").Return(&domain.FetchRecord{
		Toolchain: "python",
		Package:   "infra_internal/rbe/reclient_cfgs/rbe-chromium-untrusted/python",
		Ref:       "revision/3.8.0",
	}, nil)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)

	report, err := f.fetcher.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, report.StatusOf(domain.ToolchainPython))
}

func TestFetcher_Run_StateReadFailureStillWrites(t *testing.T) {
	f := newFixture(t)
	opts := baseOptions()
	opts.ClangRevision = ""
	opts.NaClDir = ""

	f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.None[string](), nil)
	f.expectNoWinCross()
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()
	f.ensurer.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return("", nil)
	f.store.EXPECT().Get(gomock.Any(), "python").Return(nil, domain.ErrStateReadFailed)
	f.log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "failed to read fetch state for python")
	})
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.fetcher.Run(context.Background(), opts)
	require.NoError(t, err)
}

func TestFetcher_ResolveRevisions(t *testing.T) {
	t.Run("override wins over update script", func(t *testing.T) {
		f := newFixture(t)
		opts := baseOptions()
		opts.ClangRevision = "override"
		opts.NaClDir = ""
		f.clang.EXPECT().PackageVersion(gomock.Any()).Times(0)

		revs, err := f.fetcher.ResolveRevisions(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, mo.Some("override"), revs.Get(domain.ToolchainClang))
		assert.Equal(t, mo.None[string](), revs.Get(domain.ToolchainNaCl))
		assert.Equal(t, mo.Some("3.8.0"), revs.Get(domain.ToolchainPython))
	})

	t.Run("missing nacl checkout", func(t *testing.T) {
		f := newFixture(t)
		opts := baseOptions()
		opts.ClangRevision = "x"
		f.fs.EXPECT().Exists("/src/native_client").Return(false)
		f.revisions.EXPECT().LastCommit(gomock.Any(), gomock.Any()).Times(0)

		revs, err := f.fetcher.ResolveRevisions(context.Background(), opts)
		require.NoError(t, err)
		assert.True(t, revs.Get(domain.ToolchainNaCl).IsAbsent())
	})

	t.Run("git failure", func(t *testing.T) {
		f := newFixture(t)
		opts := baseOptions()
		opts.ClangRevision = "x"
		f.fs.EXPECT().Exists("/src/native_client").Return(true)
		f.revisions.EXPECT().LastCommit(gomock.Any(), "/src/native_client").
			Return("", errors.Join(domain.ErrRevisionLookupFailed, errors.New("not a git repository")))

		_, err := f.fetcher.ResolveRevisions(context.Background(), opts)
		require.ErrorIs(t, err, domain.ErrRevisionLookupFailed)
	})

	t.Run("clang script read failure", func(t *testing.T) {
		f := newFixture(t)
		opts := baseOptions()
		opts.NaClDir = ""
		f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.None[string](), domain.ErrClangVersionReadFailed)

		_, err := f.fetcher.ResolveRevisions(context.Background(), opts)
		require.ErrorIs(t, err, domain.ErrRevisionLookupFailed)
		assert.ErrorIs(t, err, domain.ErrClangVersionReadFailed)
	})

	t.Run("clang failure stops before the nacl lookup", func(t *testing.T) {
		f := newFixture(t)
		opts := baseOptions()
		f.clang.EXPECT().PackageVersion(gomock.Any()).Return(mo.None[string](), domain.ErrClangVersionReadFailed)
		f.fs.EXPECT().Exists(gomock.Any()).Times(0)
		f.revisions.EXPECT().LastCommit(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.fetcher.ResolveRevisions(context.Background(), opts)
		require.ErrorIs(t, err, domain.ErrClangVersionReadFailed)
	})
}
