package domain

import "path/filepath"

// Config is the resolved buildtools configuration.
type Config struct {
	SrcRoot  string
	Cipd     CipdConfig
	Reclient ReclientConfig
	Libcxx   LibcxxConfig
}

// CipdConfig configures the cipd client.
type CipdConfig struct {
	Binary string
	Prefix string
}

// ReclientConfig configures the reclient cfgs fetcher.
type ReclientConfig struct {
	Dir               string
	ClangUpdateScript string
	NaClDir           string
	PythonVersion     string
	// ClangRevision overrides the version read from the clang update script.
	ClangRevision string
}

// LibcxxConfig configures the libc++ header list generator.
type LibcxxConfig struct {
	IncludeDir  string
	Output      string
	VirtualRoot string
	Excludes    []string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		SrcRoot: ".",
		Cipd: CipdConfig{
			Binary: DefaultCipdBinary,
			Prefix: DefaultCipdPrefix,
		},
		Reclient: ReclientConfig{
			Dir:               DefaultReclientCfgsDir,
			ClangUpdateScript: DefaultClangUpdateScript,
			NaClDir:           DefaultNaClDir,
			PythonVersion:     DefaultPythonVersion,
		},
		Libcxx: LibcxxConfig{
			IncludeDir:  DefaultLibcxxIncludeDir,
			Output:      DefaultLibcxxOutput,
			VirtualRoot: DefaultLibcxxVirtualRoot,
		},
	}
}

// ResolvePath anchors a relative path at SrcRoot.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.SrcRoot, p)
}
