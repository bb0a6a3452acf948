// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/cas"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/cipd"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/clang"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/config"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/git"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/gn"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/logger"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/shell"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/app"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/engine/libcxx"
	_ "github.com/gsource-mirror/chromium-src-buildtools/internal/engine/reclient"
)
