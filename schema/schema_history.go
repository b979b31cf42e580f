package schema

import "time"

// HistoryStatus holds status information about the run-history store.
type HistoryStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TotalChecks   int64
	TableSizes    map[string]int64
}

// GateRunRecord is a single gate run as stored in the history backend.
type GateRunRecord struct {
	RunID           int64
	RunTime         time.Time
	Passed          bool
	TotalChecks     int32
	Recommendations *string // JSON-encoded list, nullable
	ConfigParams    *string // JSON-encoded config snapshot, nullable
}

// CheckOutcomeRecord is a single objective or budget outcome tied to a run.
type CheckOutcomeRecord struct {
	RunID        int64
	Name         string
	Kind         CheckKind
	CurrentValue float64
	TargetValue  float64
	Op           string // empty for budget checks
	Status       string
	Passed       bool
}
