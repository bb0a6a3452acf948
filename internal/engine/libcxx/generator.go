// Package libcxx generates the GN list of libc++ headers.
package libcxx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/samber/mo"
	"go.trai.ch/zerr"
)

// Options configures one generation run. Paths are expected to be resolved already.
type Options struct {
	// IncludeDir is the libc++ include directory that is listed.
	IncludeDir string
	// Output is the generated GN file.
	Output string
	// VirtualRoot prefixes every header in the list.
	VirtualRoot string
	// Excludes are extra doublestar patterns, relative to IncludeDir.
	Excludes []string
	// RevisionCheck embeds an assertion on the libc++ revision.
	RevisionCheck bool
	// Check compares against Output instead of writing it.
	Check bool
}

// Generator lists the headers and renders them into a GN file.
type Generator struct {
	lister    ports.HeaderLister
	revisions ports.RevisionReader
	writer    ports.FragmentWriter
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(
	lister ports.HeaderLister,
	revisions ports.RevisionReader,
	writer ports.FragmentWriter,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Generator {
	return &Generator{
		lister:    lister,
		revisions: revisions,
		writer:    writer,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run renders the header list and writes it to opts.Output, or verifies it in check mode.
func (g *Generator) Run(ctx context.Context, opts Options) (err error) {
	ctx, vertex := g.telemetry.Record(ctx, "generate "+opts.Output)
	defer func() { vertex.Complete(err) }()

	data, err := g.Render(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Check {
		upToDate, err := g.upToDate(opts.Output, data)
		if err != nil {
			return err
		}
		if !upToDate {
			return zerr.With(zerr.Wrap(domain.ErrGeneratedFileStale, "cannot verify generated file"), "path", opts.Output)
		}
		vertex.Cached()
		g.logger.Info(fmt.Sprintf("%s is up to date", opts.Output))
		return nil
	}

	return g.writer.Write(opts.Output, data)
}

// Render produces the GN file content without touching the output.
func (g *Generator) Render(ctx context.Context, opts Options) ([]byte, error) {
	headers, err := g.lister.ListHeaders(opts.IncludeDir, opts.Excludes)
	if err != nil {
		return nil, err
	}

	revision := mo.None[string]()
	if opts.RevisionCheck {
		rev, err := g.revisions.HeadRevision(ctx, opts.IncludeDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLibcxxRevisionFailed.Error()), "dir", opts.IncludeDir)
		}
		rev = strings.TrimSpace(rev)
		if rev == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrLibcxxRevisionFailed, "empty revision"), "dir", opts.IncludeDir)
		}
		revision = mo.Some(rev)
	}

	return g.writer.Render(domain.HeaderFragment{
		Headers:     headers,
		VirtualRoot: opts.VirtualRoot,
		Revision:    revision,
	})
}

// upToDate compares digests. A missing output is stale.
func (g *Generator) upToDate(path string, data []byte) (bool, error) {
	current, err := g.hasher.DigestFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return current == g.hasher.DigestBytes(data), nil
}
