// Package app implements the application layer for buildtools.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/engine/libcxx"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/engine/reclient"
	"go.trai.ch/zerr"
)

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	// ConfigPath is the buildtools config file.
	ConfigPath string
	// ConfigRequired fails the run when ConfigPath does not exist.
	ConfigRequired bool
	// SrcRoot overrides the configured source root.
	SrcRoot string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// Progress renders the recorded steps when the run ends.
	Progress bool
}

// FetchOptions configures FetchReclientCfgs.
type FetchOptions struct {
	GlobalOptions
	RBEProject string
	// CipdPrefix overrides the configured cipd prefix.
	CipdPrefix string
	Quiet      bool
}

// GenerateOptions configures GenerateLibcxxHeaders.
type GenerateOptions struct {
	GlobalOptions
	// IncludeDir overrides the configured include directory.
	IncludeDir string
	// Output overrides the configured output file.
	Output        string
	RevisionCheck bool
	Check         bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	telemetry    ports.Telemetry
	progress     io.Writer
	fetcher      *reclient.Fetcher
	generator    *libcxx.Generator
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	telemetry ports.Telemetry,
	fetcher *reclient.Fetcher,
	generator *libcxx.Generator,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		telemetry:    telemetry,
		progress:     os.Stderr,
		fetcher:      fetcher,
		generator:    generator,
	}
}

// SetProgressOutput sets where --progress renders the recorded steps.
func (a *App) SetProgressOutput(w io.Writer) {
	a.progress = w
}

// FetchReclientCfgs downloads the reclient cfgs of every toolchain.
func (a *App) FetchReclientCfgs(ctx context.Context, opts FetchOptions) (domain.FetchReport, error) {
	a.configureOutput(opts.GlobalOptions, opts.Quiet)

	cfg, err := a.loadConfig(opts.GlobalOptions)
	if err != nil {
		return nil, err
	}

	prefix := cfg.Cipd.Prefix
	if opts.CipdPrefix != "" {
		prefix = opts.CipdPrefix
	}

	report, err := a.fetcher.Run(ctx, reclient.Options{
		RBEProject:        opts.RBEProject,
		CipdPrefix:        prefix,
		CipdBinary:        cfg.Cipd.Binary,
		Quiet:             opts.Quiet,
		CfgsDir:           cfg.ResolvePath(cfg.Reclient.Dir),
		ClangUpdateScript: cfg.ResolvePath(cfg.Reclient.ClangUpdateScript),
		ClangRevision:     cfg.Reclient.ClangRevision,
		NaClDir:           cfg.ResolvePath(cfg.Reclient.NaClDir),
		PythonVersion:     cfg.Reclient.PythonVersion,
	})
	a.logReport(report)
	return report, err
}

// logReport logs one line per toolchain the fetch reached.
func (a *App) logReport(report domain.FetchReport) {
	for _, o := range report {
		if o.Status.IsTerminal() {
			a.logger.Info(o.String())
		}
	}
}

// GenerateLibcxxHeaders writes, or verifies, the GN list of libc++ headers.
func (a *App) GenerateLibcxxHeaders(ctx context.Context, opts GenerateOptions) error {
	a.configureOutput(opts.GlobalOptions, false)

	cfg, err := a.loadConfig(opts.GlobalOptions)
	if err != nil {
		return err
	}

	includeDir := cfg.Libcxx.IncludeDir
	if opts.IncludeDir != "" {
		includeDir = opts.IncludeDir
	}
	output := cfg.Libcxx.Output
	if opts.Output != "" {
		output = opts.Output
	}

	return a.generator.Run(ctx, libcxx.Options{
		IncludeDir:    cfg.ResolvePath(includeDir),
		Output:        cfg.ResolvePath(output),
		VirtualRoot:   cfg.Libcxx.VirtualRoot,
		Excludes:      cfg.Libcxx.Excludes,
		RevisionCheck: opts.RevisionCheck,
		Check:         opts.Check,
	})
}

func (a *App) loadConfig(opts GlobalOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path, opts.ConfigRequired)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.SrcRoot != "" {
		cfg.SrcRoot = opts.SrcRoot
	}
	return cfg, nil
}

// configureOutput applies output flags when the logger and telemetry support them.
func (a *App) configureOutput(opts GlobalOptions, quiet bool) {
	if t, ok := a.telemetry.(interface{ SetProgress(io.Writer) }); ok {
		var w io.Writer
		if opts.Progress {
			w = a.progress
		}
		t.SetProgress(w)
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.LogJSON)
	}
	if l, ok := a.logger.(interface{ SetLevel(slog.Level) }); ok {
		level := slog.LevelInfo
		if quiet {
			level = slog.LevelWarn
		}
		l.SetLevel(level)
	}
}
