package ports

import "github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"

// FragmentWriter renders and writes the generated GN header list.
//
//go:generate go run go.uber.org/mock/mockgen -source=fragment.go -destination=mocks/mock_fragment.go -package=mocks
type FragmentWriter interface {
	// Render produces the GN file content.
	Render(fragment domain.HeaderFragment) ([]byte, error)
	// Write replaces path with data in a single write.
	Write(path string, data []byte) error
}
