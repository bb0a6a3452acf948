package config

// File is the on-disk layout of buildtools.yaml. Every key is optional.
type File struct {
	SrcRoot  string      `yaml:"src_root"`
	Cipd     CipdDTO     `yaml:"cipd"`
	Reclient ReclientDTO `yaml:"reclient"`
	Libcxx   LibcxxDTO   `yaml:"libcxx"`
}

// CipdDTO configures the cipd client.
type CipdDTO struct {
	Binary string `yaml:"binary"`
	Prefix string `yaml:"prefix"`
}

// ReclientDTO configures the reclient cfgs fetcher.
type ReclientDTO struct {
	Dir               string `yaml:"dir"`
	ClangUpdateScript string `yaml:"clang_update_script"`
	NaClDir           string `yaml:"nacl_dir"`
	PythonVersion     string `yaml:"python_version"`
	ClangRevision     string `yaml:"clang_revision"`
}

// LibcxxDTO configures the libc++ header list generator.
type LibcxxDTO struct {
	IncludeDir  string   `yaml:"include_dir"`
	Output      string   `yaml:"output"`
	VirtualRoot string   `yaml:"virtual_root"`
	Excludes    []string `yaml:"excludes"`
}
