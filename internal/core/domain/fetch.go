package domain

import "slices"

// SyncStatus is the outcome of syncing one toolchain.
type SyncStatus string

const (
	// SyncStatusPending means the toolchain was not reached.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusCompleted means cipd ensure succeeded and cfgs were reconciled.
	SyncStatusCompleted SyncStatus = "completed"
	// SyncStatusFailed means cipd ensure or the cfg copy failed.
	SyncStatusFailed SyncStatus = "failed"
	// SyncStatusSkipped means no revision was found for the toolchain.
	SyncStatusSkipped SyncStatus = "skipped"
)

// IsTerminal reports whether the toolchain was processed at all.
func (s SyncStatus) IsTerminal() bool {
	switch s {
	case SyncStatusCompleted, SyncStatusFailed, SyncStatusSkipped:
		return true
	default:
		return false
	}
}

// ToolchainOutcome is one line of a FetchReport.
type ToolchainOutcome struct {
	Toolchain Toolchain
	Status    SyncStatus
	Ref       string
}

// String renders the outcome as "<toolchain>: <status> [<ref>]".
func (o ToolchainOutcome) String() string {
	if o.Ref == "" {
		return o.Toolchain.String() + ": " + string(o.Status)
	}
	return o.Toolchain.String() + ": " + string(o.Status) + " " + o.Ref
}

// FetchReport lists every toolchain in fetch order with its outcome.
type FetchReport []ToolchainOutcome

// NewFetchReport returns a report with every toolchain pending.
func NewFetchReport() FetchReport {
	toolchains := Toolchains()
	report := make(FetchReport, len(toolchains))
	for i, t := range toolchains {
		report[i] = ToolchainOutcome{Toolchain: t, Status: SyncStatusPending}
	}
	return report
}

// Set records the outcome of a toolchain.
func (r FetchReport) Set(t Toolchain, status SyncStatus, ref string) {
	for i := range r {
		if r[i].Toolchain == t {
			r[i].Status = status
			r[i].Ref = ref
			return
		}
	}
}

// StatusOf returns the recorded status of a toolchain.
func (r FetchReport) StatusOf(t Toolchain) SyncStatus {
	for _, o := range r {
		if o.Toolchain == t {
			return o.Status
		}
	}
	return SyncStatusPending
}

// FetchRecord is persisted after a toolchain was synced successfully.
type FetchRecord struct {
	Toolchain string   `json:"toolchain,omitzero"`
	Package   string   `json:"package,omitzero"`
	Ref       string   `json:"ref,omitzero"`
	Cfgs      []string `json:"cfgs,omitempty"`
}

// Equal reports whether both records describe the same sync.
func (r FetchRecord) Equal(o FetchRecord) bool {
	return r.Toolchain == o.Toolchain &&
		r.Package == o.Package &&
		r.Ref == o.Ref &&
		slices.Equal(r.Cfgs, o.Cfgs)
}
