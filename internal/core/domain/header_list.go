package domain

import (
	"slices"
	"strings"

	"github.com/samber/mo"
)

const (
	// CMakeMarkerFile is the build-system file that is never a header.
	CMakeMarkerFile = "CMakeLists.txt"
	// ExcludedHeaderDir holds the frozen C++03 headers, which are not part of the build.
	ExcludedHeaderDir = "__cxx03"
)

// HeaderList is a sorted list of slash-separated header paths relative to the include directory.
type HeaderList []string

// NewHeaderList sorts and deduplicates paths.
func NewHeaderList(paths []string) HeaderList {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	return HeaderList(slices.Compact(sorted))
}

// IsExcludedHeader reports whether a relative path is left out of the header list: the CMake
// marker file anywhere, and anything with an __cxx03 path component.
func IsExcludedHeader(rel string) bool {
	parts := strings.Split(rel, "/")
	if parts[len(parts)-1] == CMakeMarkerFile {
		return true
	}
	return slices.Contains(parts, ExcludedHeaderDir)
}

// HeaderFragment is the content of the generated GN file.
type HeaderFragment struct {
	Headers     HeaderList
	VirtualRoot string
	// Revision, when present, is asserted against libcxx_revision.
	Revision mo.Option[string]
}
