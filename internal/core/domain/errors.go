package domain

import "go.trai.ch/zerr"

var (
	// ErrRBEProjectNotSpecified is returned when no RBE project was given and none could be derived
	// from the environment.
	ErrRBEProjectNotSpecified = zerr.New("RBE project is not specified")

	// ErrFetchFailed is returned when fetching reclient cfgs fails after the cause was already reported.
	ErrFetchFailed = zerr.New("fetch reclient cfgs failed")

	// ErrCipdEnsureFailed is returned when `cipd ensure` exits with a non-zero status.
	ErrCipdEnsureFailed = zerr.New("cipd ensure failed")

	// ErrRevisionLookupFailed is returned when a toolchain revision source fails unexpectedly.
	ErrRevisionLookupFailed = zerr.New("failed to look up toolchain revision")

	// ErrClangVersionReadFailed is returned when the clang update script cannot be read.
	ErrClangVersionReadFailed = zerr.New("failed to read clang package version")

	// ErrCommandFailed is returned when a subprocess exits with a non-zero status or cannot be started.
	ErrCommandFailed = zerr.New("command failed")

	// ErrDirCreateFailed is returned when a directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrGlobFailed is returned when a glob pattern cannot be evaluated.
	ErrGlobFailed = zerr.New("failed to glob path")

	// ErrFileCopyFailed is returned when a file cannot be copied.
	ErrFileCopyFailed = zerr.New("failed to copy file")

	// ErrFileRemoveFailed is returned when an existing destination file cannot be removed.
	ErrFileRemoveFailed = zerr.New("failed to remove file")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrHeaderWalkFailed is returned when the include directory cannot be walked.
	ErrHeaderWalkFailed = zerr.New("failed to walk include directory")

	// ErrInvalidExcludePattern is returned when a configured exclude glob is malformed.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrLibcxxRevisionFailed is returned when the libc++ revision cannot be determined.
	ErrLibcxxRevisionFailed = zerr.New("failed to get libc++ revision")

	// ErrGeneratedFileWriteFailed is returned when the generated GN file cannot be written.
	ErrGeneratedFileWriteFailed = zerr.New("failed to write generated file")

	// ErrGeneratedFileStale is returned in check mode when the generated file does not match
	// the freshly rendered content.
	ErrGeneratedFileStale = zerr.New("generated file is out of date")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrStateReadFailed is returned when the fetch state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read fetch state")

	// ErrStateUnmarshalFailed is returned when the fetch state file cannot be decoded.
	ErrStateUnmarshalFailed = zerr.New("failed to unmarshal fetch state")

	// ErrStateMarshalFailed is returned when the fetch state cannot be encoded.
	ErrStateMarshalFailed = zerr.New("failed to marshal fetch state")

	// ErrStateWriteFailed is returned when the fetch state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write fetch state")
)
