// Package clang reads the clang package version from Chromium's clang update script.
package clang

import (
	"errors"
	"io/fs"
	"os"
	"regexp"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/samber/mo"
	"go.trai.ch/zerr"
)

var (
	packageVersionRe = regexp.MustCompile(`(?m)^PACKAGE_VERSION\s*=\s*['"]([^'"%]+)['"]\s*$`)
	revisionRe       = regexp.MustCompile(`(?m)^CLANG_REVISION\s*=\s*['"]([^'"]+)['"]`)
	subRevisionRe    = regexp.MustCompile(`(?m)^CLANG_SUB_REVISION\s*=\s*(\d+)`)
)

// Reader implements ports.ClangVersionReader.
type Reader struct{}

var _ ports.ClangVersionReader = (*Reader)(nil)

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// PackageVersion returns the version declared in the update script.
//
// A PACKAGE_VERSION assigned a plain string literal wins; otherwise, including the usual
// '%s-%s' % (...) formatting, it is composed as CLANG_REVISION-CLANG_SUB_REVISION. A missing
// script or missing assignments yield none.
func (r *Reader) PackageVersion(scriptPath string) (mo.Option[string], error) {
	data, err := os.ReadFile(scriptPath)
	if errors.Is(err, fs.ErrNotExist) {
		return mo.None[string](), nil
	}
	if err != nil {
		return mo.None[string](), zerr.With(zerr.Wrap(err, domain.ErrClangVersionReadFailed.Error()), "path", scriptPath)
	}

	return ParsePackageVersion(data), nil
}

// ParsePackageVersion extracts the clang package version from the update script source.
func ParsePackageVersion(src []byte) mo.Option[string] {
	if m := packageVersionRe.FindSubmatch(src); m != nil {
		return domain.OptionalString(string(m[1]))
	}

	rev := revisionRe.FindSubmatch(src)
	sub := subRevisionRe.FindSubmatch(src)
	if rev == nil || sub == nil {
		return mo.None[string]()
	}
	return mo.Some(string(rev[1]) + "-" + string(sub[1]))
}
