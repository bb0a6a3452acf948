// Package cas stores the per-toolchain fetch state next to the reclient cfgs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	bfs "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FetchStateStore = (*Store)(nil)

// Store implements ports.FetchStateStore using a flat JSON file keyed by toolchain.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for a toolchain. It returns nil, nil if there is none.
func (s *Store) Get(statePath, toolchain string) (*domain.FetchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(statePath)
	if err != nil {
		return nil, err
	}

	rec, ok := records[toolchain]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record, replacing any previous record of the same toolchain.
func (s *Store) Put(statePath string, record domain.FetchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(statePath)
	if err != nil {
		return err
	}
	records[record.Toolchain] = record

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateMarshalFailed.Error())
	}

	if err := bfs.WriteFileAtomic(statePath, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", statePath)
	}
	return nil
}

func load(statePath string) (map[string]domain.FetchRecord, error) {
	records := make(map[string]domain.FetchRecord)

	data, err := os.ReadFile(filepath.Clean(statePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", statePath)
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateUnmarshalFailed.Error()), "path", statePath)
	}
	return records, nil
}
