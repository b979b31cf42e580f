package schema

import "fmt"

// Custom string types for type safety.
type (
	// CompareOp represents a comparison operator used by an SLO target.
	CompareOp string

	// BudgetStatus represents the consumption classification of an error budget.
	BudgetStatus string

	// CheckKind distinguishes objective checks from budget checks in records.
	CheckKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All comparison operators supported. The set is closed: anything else is
// rejected by ParseCompareOp before evaluation ever runs.
const (
	OpGTE CompareOp = ">="
	OpLTE CompareOp = "<="
	OpGT  CompareOp = ">"
	OpLT  CompareOp = "<"
)

// All budget statuses supported.
const (
	BudgetOK       BudgetStatus = "OK"
	BudgetWarning  BudgetStatus = "WARNING"
	BudgetCritical BudgetStatus = "CRITICAL"
)

// All check kinds supported.
const (
	SLOCheck    CheckKind = "slo"
	BudgetCheck CheckKind = "budget"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Default budget classification thresholds, as consumption percentages.
const (
	DefaultBudgetWarning  = 50.0
	DefaultBudgetCritical = 80.0
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ParseCompareOp converts a raw operator string into a CompareOp.
// Unknown operators are an error at construction time rather than a silent
// failure at evaluation time.
func ParseCompareOp(s string) (CompareOp, error) {
	switch CompareOp(s) {
	case OpGTE, OpLTE, OpGT, OpLT:
		return CompareOp(s), nil
	default:
		return "", fmt.Errorf("invalid comparison operator %q. must be >=, <=, >, <", s)
	}
}

// Evaluate applies the operator to a current value and a target value.
// It is total over the four supported operators; ParseCompareOp guarantees
// no other value reaches this method.
func (op CompareOp) Evaluate(current, target float64) bool {
	switch op {
	case OpGTE:
		return current >= target
	case OpLTE:
		return current <= target
	case OpGT:
		return current > target
	case OpLT:
		return current < target
	default:
		return false
	}
}

// ClassifyBudget maps a consumption percentage to its budget status.
// The critical boundary is inclusive: consumption equal to the critical
// threshold is CRITICAL.
func ClassifyBudget(consumption, warning, critical float64) BudgetStatus {
	switch {
	case consumption >= critical:
		return BudgetCritical
	case consumption >= warning:
		return BudgetWarning
	default:
		return BudgetOK
	}
}
