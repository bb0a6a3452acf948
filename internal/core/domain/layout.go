package domain

import "os"

const (
	// DirPerm is the permission used for directories created by buildtools.
	DirPerm os.FileMode = 0o755
	// FilePerm is the permission used for generated and state files.
	FilePerm os.FileMode = 0o644
	// WritablePerm is applied to an existing cfg file before it is replaced, so read-only
	// copies left by earlier runs can be removed on every platform.
	WritablePerm os.FileMode = 0o777

	// DefaultConfigFile is the optional buildtools config file name.
	DefaultConfigFile = "buildtools.yaml"

	// DefaultCipdPrefix is the cipd package name prefix for reclient cfgs.
	DefaultCipdPrefix = "infra_internal/rbe/reclient_cfgs"
	// DefaultPythonVersion is the python revision whose cfgs are fetched.
	DefaultPythonVersion = "3.8.0"
	// DefaultReclientCfgsDir is the reclient cfgs directory, relative to the source root.
	DefaultReclientCfgsDir = "buildtools/reclient_cfgs"
	// DefaultClangUpdateScript declares the clang package version, relative to the source root.
	DefaultClangUpdateScript = "tools/clang/scripts/update.py"
	// DefaultNaClDir is the native_client checkout, relative to the source root.
	DefaultNaClDir = "native_client"

	// CfgPattern matches reclient cfg files.
	CfgPattern = "*.cfg"
	// WinCrossDir is the current name of the windows cross-compile cfg directory.
	WinCrossDir = "win-cross"
	// WinCrossExperimentsDir is the legacy name of the windows cross-compile cfg directory.
	WinCrossExperimentsDir = "win-cross-experiments"
	// FetchStateFile records the last successful fetch per toolchain inside the cfgs directory.
	FetchStateFile = ".fetch_state.json"

	// DefaultLibcxxIncludeDir is the vendored libc++ include directory, relative to the source root.
	DefaultLibcxxIncludeDir = "third_party/libc++/src/include"
	// DefaultLibcxxOutput is the generated GN file, relative to the source root.
	DefaultLibcxxOutput = "buildtools/third_party/libc++/generated_libcxx_headers.gni"
	// DefaultLibcxxVirtualRoot prefixes every header in the generated list.
	DefaultLibcxxVirtualRoot = "//third_party/libc++/src/include"
)

// WinCrossCfgDirs returns both names of the windows cross-compile cfg directory, legacy last so
// its files win when both exist.
// TODO(crbug.com/1407557): drop win-cross-experiments once no published bundle uses it.
func WinCrossCfgDirs() []string {
	return []string{WinCrossDir, WinCrossExperimentsDir}
}
