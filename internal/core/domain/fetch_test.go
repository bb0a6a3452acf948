package domain_test

import (
	"slices"
	"testing"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFetchReport(t *testing.T) {
	report := domain.NewFetchReport()
	for _, o := range report {
		assert.Equal(t, domain.SyncStatusPending, o.Status)
		assert.False(t, o.Status.IsTerminal())
	}

	report.Set(domain.ToolchainNaCl, domain.SyncStatusFailed, "revision/abc")
	assert.Equal(t, domain.SyncStatusFailed, report.StatusOf(domain.ToolchainNaCl))
	assert.Equal(t, "revision/abc", report[1].Ref)
	assert.True(t, report.StatusOf(domain.ToolchainNaCl).IsTerminal())

	report.Set(domain.Toolchain("unknown"), domain.SyncStatusCompleted, "")
	assert.Len(t, report, 3)
	assert.Equal(t, domain.SyncStatusPending, report.StatusOf(domain.Toolchain("unknown")))
}

func TestToolchainOutcome_String(t *testing.T) {
	assert.Equal(t, "nacl: skipped", domain.ToolchainOutcome{
		Toolchain: domain.ToolchainNaCl,
		Status:    domain.SyncStatusSkipped,
	}.String())
	assert.Equal(t, "python: completed revision/3.8.0", domain.ToolchainOutcome{
		Toolchain: domain.ToolchainPython,
		Status:    domain.SyncStatusCompleted,
		Ref:       "revision/3.8.0",
	}.String())
}

func TestFetchRecord_Equal(t *testing.T) {
	base := domain.FetchRecord{
		Toolchain: "chromium-browser-clang",
		Package:   "p/proj/chromium-browser-clang",
		Ref:       "revision/r1",
		Cfgs:      []string{"win-cross/chromium-browser-clang/rewrapper_windows.cfg"},
	}

	same := base
	same.Cfgs = slices.Clone(base.Cfgs)
	assert.True(t, base.Equal(same))

	newRef := base
	newRef.Ref = "revision/r2"
	assert.False(t, base.Equal(newRef))

	noCfgs := base
	noCfgs.Cfgs = nil
	assert.False(t, base.Equal(noCfgs))
	assert.True(t, noCfgs.Equal(domain.FetchRecord{
		Toolchain: base.Toolchain,
		Package:   base.Package,
		Ref:       base.Ref,
		Cfgs:      []string{},
	}))
}
