package schema

import "time"

// SLOResult is the outcome of a single objective check.
type SLOResult struct {
	Name    string    `json:"name"`
	Current float64   `json:"current"`
	Target  float64   `json:"target"`
	Op      CompareOp `json:"operator"`
	Passed  bool      `json:"passed"`
}

// ErrorBudgetResult is the outcome of a single error-budget check.
type ErrorBudgetResult struct {
	Name        string       `json:"name"`
	Consumption float64      `json:"consumption"`
	Threshold   float64      `json:"threshold"`
	Status      BudgetStatus `json:"status"`
}

// CheckReport aggregates one full gate evaluation. It is constructed fresh
// per run, never mutated afterwards, and carries no cross-run state.
// SLOResults and BudgetResults preserve check insertion order; consumers
// render tables in that order.
type CheckReport struct {
	Passed          bool                `json:"passed"`
	GeneratedAt     time.Time           `json:"generated_at"`
	SLOResults      []SLOResult         `json:"slo_results"`
	BudgetResults   []ErrorBudgetResult `json:"budget_results"`
	Recommendations []string            `json:"recommendations"`
}

// TotalChecks returns the number of recorded checks of both kinds.
func (r *CheckReport) TotalChecks() int {
	return len(r.SLOResults) + len(r.BudgetResults)
}
