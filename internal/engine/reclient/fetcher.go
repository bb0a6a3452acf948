// Package reclient fetches the reclient cfg bundles of each toolchain from cipd.
package reclient

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.trai.ch/zerr"
)

// Options configures one fetch run. Paths are expected to be resolved already.
type Options struct {
	// RBEProject is the RBE instance project id. Required.
	RBEProject string
	// CipdPrefix is the package name prefix, e.g. "infra_internal/rbe/reclient_cfgs".
	CipdPrefix string
	// CipdBinary is the cipd executable. Empty means domain.DefaultCipdBinary.
	CipdBinary string
	// Quiet lowers cipd's log level.
	Quiet bool

	// CfgsDir is the reclient cfgs directory that receives one directory per toolchain.
	CfgsDir string
	// ClangUpdateScript is the script declaring the clang package version.
	ClangUpdateScript string
	// ClangRevision overrides the version read from ClangUpdateScript.
	ClangRevision string
	// NaClDir is the native_client checkout.
	NaClDir string
	// PythonVersion is the python cfg revision.
	PythonVersion string
}

// Fetcher runs `cipd ensure` for every toolchain with a known revision and copies the windows
// cross-compile cfgs into place.
type Fetcher struct {
	logger    ports.Logger
	ensurer   ports.PackageEnsurer
	revisions ports.RevisionReader
	clang     ports.ClangVersionReader
	fs        ports.FileSystem
	store     ports.FetchStateStore
	telemetry ports.Telemetry
}

// NewFetcher creates a new Fetcher.
func NewFetcher(
	logger ports.Logger,
	ensurer ports.PackageEnsurer,
	revisions ports.RevisionReader,
	clang ports.ClangVersionReader,
	fs ports.FileSystem,
	store ports.FetchStateStore,
	telemetry ports.Telemetry,
) *Fetcher {
	return &Fetcher{
		logger:    logger,
		ensurer:   ensurer,
		revisions: revisions,
		clang:     clang,
		fs:        fs,
		store:     store,
		telemetry: telemetry,
	}
}

// Run fetches the cfgs of every toolchain in order.
//
// It stops at the first cipd failure. Errors that were already reported as a warning are joined
// with domain.ErrFetchFailed; any other error has not been logged yet.
func (f *Fetcher) Run(ctx context.Context, opts Options) (domain.FetchReport, error) {
	report := domain.NewFetchReport()

	if opts.RBEProject == "" {
		f.logger.Warn(domain.ErrRBEProjectNotSpecified.Error())
		return report, errors.Join(domain.ErrFetchFailed, domain.ErrRBEProjectNotSpecified)
	}

	f.logger.Info(fmt.Sprintf("fetch reclient_cfgs for RBE project %s...", opts.RBEProject))

	revisions, err := f.ResolveRevisions(ctx, opts)
	if err != nil {
		return report, err
	}

	for _, toolchain := range domain.Toolchains() {
		revision, ok := revisions.Get(toolchain).Get()
		if !ok {
			f.logger.Info(fmt.Sprintf("failed to detect %s revision", toolchain))
			report.Set(toolchain, domain.SyncStatusSkipped, "")
			continue
		}

		if err := f.sync(ctx, opts, toolchain, revision, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

// ResolveRevisions looks up the revision of every toolchain in fetch order. A clang lookup
// failure stops before git is run for nacl.
func (f *Fetcher) ResolveRevisions(ctx context.Context, opts Options) (domain.ToolchainRevisions, error) {
	clang, err := f.clangRevision(opts)
	if err != nil {
		return nil, err
	}

	nacl, err := f.naclRevision(ctx, opts.NaClDir)
	if err != nil {
		return nil, err
	}

	return domain.ToolchainRevisions{
		domain.ToolchainClang:  clang,
		domain.ToolchainNaCl:   nacl,
		domain.ToolchainPython: domain.OptionalString(opts.PythonVersion),
	}, nil
}

func (f *Fetcher) clangRevision(opts Options) (mo.Option[string], error) {
	if opts.ClangRevision != "" {
		return mo.Some(opts.ClangRevision), nil
	}
	rev, err := f.clang.PackageVersion(opts.ClangUpdateScript)
	if err != nil {
		return mo.None[string](), zerr.With(errors.Join(domain.ErrRevisionLookupFailed, err), "toolchain", domain.ToolchainClang.String())
	}
	return rev, nil
}

// naclRevision returns none when the checkout is missing. A git failure in an existing checkout
// is an error.
func (f *Fetcher) naclRevision(ctx context.Context, dir string) (mo.Option[string], error) {
	if dir == "" || !f.fs.Exists(dir) {
		return mo.None[string](), nil
	}
	rev, err := f.revisions.LastCommit(ctx, dir)
	if err != nil {
		return mo.None[string](), zerr.With(err, "toolchain", domain.ToolchainNaCl.String())
	}
	return domain.OptionalString(rev), nil
}

func (f *Fetcher) sync(
	ctx context.Context,
	opts Options,
	toolchain domain.Toolchain,
	revision string,
	report domain.FetchReport,
) error {
	root := filepath.Join(opts.CfgsDir, toolchain.String())

	req := domain.NewEnsureRequest(opts.CipdPrefix, opts.RBEProject, toolchain, revision, root)
	req.Binary = opts.CipdBinary
	req.Quiet = opts.Quiet

	ctx, vertex := f.telemetry.Record(ctx, "ensure "+toolchain.String())

	output, err := f.ensurer.Ensure(ctx, req)
	if err != nil {
		vertex.Complete(err)
		report.Set(toolchain, domain.SyncStatusFailed, req.Ref)
		if strings.TrimSpace(output) == "" {
			output = err.Error()
		}
		f.logger.Warn(output)
		return errors.Join(domain.ErrFetchFailed, err)
	}

	cfgs, err := f.copyWinCrossCfgs(opts.CfgsDir, root, toolchain)
	vertex.Complete(err)
	if err != nil {
		report.Set(toolchain, domain.SyncStatusFailed, req.Ref)
		return err
	}
	report.Set(toolchain, domain.SyncStatusCompleted, req.Ref)

	f.recordState(opts.CfgsDir, domain.FetchRecord{
		Toolchain: toolchain.String(),
		Package:   req.Package,
		Ref:       req.Ref,
		Cfgs:      cfgs,
	})
	return nil
}

// copyWinCrossCfgs copies the cfgs of both win-cross directory names into
// <cfgsDir>/win-cross/<toolchain>, since windows may not use symlinks. It returns the copied
// files relative to cfgsDir.
func (f *Fetcher) copyWinCrossCfgs(cfgsDir, root string, toolchain domain.Toolchain) ([]string, error) {
	dest := filepath.Join(cfgsDir, domain.WinCrossDir, toolchain.String())
	if !f.fs.Exists(dest) {
		if err := f.fs.MkdirAll(dest, domain.DirPerm); err != nil {
			return nil, err
		}
	}

	var copied []string
	for _, name := range domain.WinCrossCfgDirs() {
		srcDir := filepath.Join(root, name)
		if !f.fs.Exists(srcDir) {
			continue
		}

		cfgs, err := f.fs.Glob(srcDir, domain.CfgPattern)
		if err != nil {
			return nil, err
		}

		for _, cfg := range cfgs {
			dst := filepath.Join(dest, filepath.Base(cfg))
			f.logger.Info(fmt.Sprintf("Copy from %s to %s...", cfg, dst))
			if err := f.fs.ReplaceFile(cfg, dst); err != nil {
				return nil, err
			}
			copied = append(copied, dst)
		}
	}

	if len(copied) == 0 {
		return nil, nil
	}
	return lo.Map(lo.Uniq(copied), func(p string, _ int) string {
		if rel, err := filepath.Rel(cfgsDir, p); err == nil {
			return filepath.ToSlash(rel)
		}
		return p
	}), nil
}

// recordState persists the fetch record unless the stored one is identical, so a rerun with the
// same revisions leaves the state file untouched. Failing to do so does not fail the fetch.
func (f *Fetcher) recordState(cfgsDir string, record domain.FetchRecord) {
	statePath := filepath.Join(cfgsDir, domain.FetchStateFile)

	prev, err := f.store.Get(statePath, record.Toolchain)
	if err != nil {
		f.logger.Warn(fmt.Sprintf("failed to read fetch state for %s: %v", record.Toolchain, err))
	} else if prev != nil && prev.Equal(record) {
		return
	}

	if err := f.store.Put(statePath, record); err != nil {
		f.logger.Warn(fmt.Sprintf("failed to record fetch state for %s: %v", record.Toolchain, err))
	}
}
