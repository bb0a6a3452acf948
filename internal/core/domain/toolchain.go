package domain

import "github.com/samber/mo"

// Toolchain names a toolchain whose reclient cfgs are published as a cipd package.
type Toolchain string

const (
	// ToolchainClang is the Chromium clang toolchain.
	ToolchainClang Toolchain = "chromium-browser-clang"
	// ToolchainNaCl is the Native Client toolchain.
	ToolchainNaCl Toolchain = "nacl"
	// ToolchainPython is the pinned python interpreter.
	ToolchainPython Toolchain = "python"
)

// Toolchains returns the toolchains in the order they are fetched.
func Toolchains() []Toolchain {
	return []Toolchain{ToolchainClang, ToolchainNaCl, ToolchainPython}
}

// String returns the toolchain name.
func (t Toolchain) String() string {
	return string(t)
}

// ToolchainRevisions maps each toolchain to the revision of its cfg bundle, if one was found.
type ToolchainRevisions map[Toolchain]mo.Option[string]

// Get returns the revision for the toolchain. Unknown toolchains have no revision.
func (r ToolchainRevisions) Get(t Toolchain) mo.Option[string] {
	rev, ok := r[t]
	if !ok {
		return mo.None[string]()
	}
	return rev
}

// OptionalString treats the empty string as an absent value.
func OptionalString(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}
