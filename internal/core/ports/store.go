package ports

import "github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"

// FetchStateStore records the last successful fetch of each toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FetchStateStore interface {
	// Get returns the record for toolchain from the state file, or nil, nil if there is none.
	Get(statePath, toolchain string) (*domain.FetchRecord, error)
	// Put stores the record in the state file.
	Put(statePath string, record domain.FetchRecord) error
}
