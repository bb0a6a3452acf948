// Package config provides the configuration loader for buildtools.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration at path and applies it over domain.DefaultConfig.
//
// A missing file yields the defaults unless required is set. A relative src_root is resolved
// against the directory containing the file.
func (l *Loader) Load(path string, required bool) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load configuration"), "path", path)
			}
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(cfg, &file, filepath.Dir(path))
	return cfg, nil
}

func apply(cfg *domain.Config, file *File, baseDir string) {
	if file.SrcRoot != "" {
		cfg.SrcRoot = file.SrcRoot
		if !filepath.IsAbs(cfg.SrcRoot) {
			cfg.SrcRoot = filepath.Join(baseDir, cfg.SrcRoot)
		}
	}

	set(&cfg.Cipd.Binary, file.Cipd.Binary)
	set(&cfg.Cipd.Prefix, file.Cipd.Prefix)

	set(&cfg.Reclient.Dir, file.Reclient.Dir)
	set(&cfg.Reclient.ClangUpdateScript, file.Reclient.ClangUpdateScript)
	set(&cfg.Reclient.NaClDir, file.Reclient.NaClDir)
	set(&cfg.Reclient.PythonVersion, file.Reclient.PythonVersion)
	set(&cfg.Reclient.ClangRevision, file.Reclient.ClangRevision)

	set(&cfg.Libcxx.IncludeDir, file.Libcxx.IncludeDir)
	set(&cfg.Libcxx.Output, file.Libcxx.Output)
	set(&cfg.Libcxx.VirtualRoot, file.Libcxx.VirtualRoot)
	if file.Libcxx.Excludes != nil {
		cfg.Libcxx.Excludes = file.Libcxx.Excludes
	}
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
