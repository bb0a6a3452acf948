package domain

import (
	"fmt"
	"path"
)

const (
	// DefaultCipdBinary is the cipd client looked up on PATH.
	DefaultCipdBinary = "cipd"

	cipdLogLevelQuiet   = "warning"
	cipdLogLevelVerbose = "debug"
	cipdRefPrefix       = "revision/"
)

// EnsureRequest describes a single `cipd ensure` invocation.
type EnsureRequest struct {
	// Binary is the cipd executable. Empty means DefaultCipdBinary.
	Binary string
	// Package is the full cipd package name.
	Package string
	// Ref is the package reference to install, e.g. "revision/<rev>".
	Ref string
	// Root is the directory cipd installs into.
	Root string
	// Quiet lowers the cipd log level to warning.
	Quiet bool
}

// NewEnsureRequest builds the request for a toolchain's cfg bundle at the given revision.
// The package name is <prefix>/<project>/<toolchain>.
func NewEnsureRequest(prefix, project string, toolchain Toolchain, revision, root string) EnsureRequest {
	return EnsureRequest{
		Package: path.Join(prefix, project, toolchain.String()),
		Ref:     cipdRefPrefix + revision,
		Root:    root,
	}
}

// Executable returns the cipd binary to run.
func (r EnsureRequest) Executable() string {
	if r.Binary == "" {
		return DefaultCipdBinary
	}
	return r.Binary
}

// LogLevel returns the value passed to cipd's -log-level flag.
func (r EnsureRequest) LogLevel() string {
	if r.Quiet {
		return cipdLogLevelQuiet
	}
	return cipdLogLevelVerbose
}

// Args returns the cipd arguments. The ensure file is read from stdin.
func (r EnsureRequest) Args() []string {
	return []string{"ensure", "-log-level=" + r.LogLevel(), "-root", r.Root, "-ensure-file", "-"}
}

// Manifest renders the ensure file. CheckPresence makes cipd verify installed files and
// reinstall anything missing or modified.
func (r EnsureRequest) Manifest() string {
	return fmt.Sprintf("\n$ParanoidMode CheckPresence\n%s %s\n", r.Package, r.Ref)
}
