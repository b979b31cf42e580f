// Package schema has configs, models and constants for all parts of slogate.
package schema

// SLODefinition describes a single service-level objective: a named metric,
// the target it must meet, the comparison operator that relates current value
// to target, the measurement window and the error-budget allowance.
// Definitions are immutable once validated at process start.
type SLODefinition struct {
	Name            string    `json:"name"`             // Metric name, e.g. "availability"
	Target          float64   `json:"target"`           // Target threshold value
	Op              CompareOp `json:"operator"`         // Comparison operator relating current to target
	WindowDays      int       `json:"window_days"`      // Measurement window in days
	BudgetAllowance float64   `json:"budget_allowance"` // Error-budget allowance as a percentage
}

// MetricSnapshot carries the observed state of the world for one evaluation:
// current metric values and error-budget consumption, both keyed by SLO name.
// It is supplied by a MetricSource; in a real deployment that source queries
// a monitoring backend.
type MetricSnapshot struct {
	Values      map[string]float64 `json:"values"`
	Consumption map[string]float64 `json:"consumption"`
}

// DefaultSLODefinitions returns the built-in objective set, evaluated in this
// exact order. Latency is expressed as the percentage of requests under the
// latency threshold, so it compares with >= like availability.
func DefaultSLODefinitions() []SLODefinition {
	return []SLODefinition{
		{Name: "availability", Target: 99.9, Op: OpGTE, WindowDays: 30, BudgetAllowance: 0.1},
		{Name: "latency", Target: 95.0, Op: OpGTE, WindowDays: 30, BudgetAllowance: 1.0},
		{Name: "error-rate", Target: 0.1, Op: OpLTE, WindowDays: 30, BudgetAllowance: 1.0},
	}
}
