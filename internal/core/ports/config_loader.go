package ports

import "github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"

// ConfigLoader defines the interface for loading the buildtools configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. A missing file yields the defaults unless required is set.
	Load(path string, required bool) (*domain.Config, error)
}
