package fs

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/samber/lo"
	"go.trai.ch/zerr"
)

var _ ports.HeaderLister = (*Lister)(nil)

// Lister implements ports.HeaderLister on top of a Walker.
type Lister struct {
	walker *Walker
}

// NewLister creates a new Lister.
func NewLister(walker *Walker) *Lister {
	return &Lister{walker: walker}
}

// ListHeaders returns the sorted header paths under root.
func (l *Lister) ListHeaders(root string, excludes []string) (domain.HeaderList, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidExcludePattern, "cannot list headers"), "pattern", pattern)
		}
	}

	var paths []string
	for rel, err := range l.walker.WalkFiles(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHeaderWalkFailed.Error()), "root", root)
		}
		if domain.IsExcludedHeader(rel) || matchesAny(excludes, rel) {
			continue
		}
		paths = append(paths, rel)
	}

	return domain.NewHeaderList(paths), nil
}

func matchesAny(patterns []string, rel string) bool {
	return lo.SomeBy(patterns, func(pattern string) bool {
		return doublestar.MatchUnvalidated(pattern, rel)
	})
}
