package core

import (
	"fmt"
	"time"

	"github.com/huangsam/slogate/schema"
)

// ReportBuilder accumulates check outcomes for one gate evaluation and
// assembles them into an immutable CheckReport. All state lives in the
// builder; nothing is shared between runs. The aggregate passed flag is
// monotonic: once a check fails it stays failed for the rest of the run.
type ReportBuilder struct {
	warning         float64
	critical        float64
	sloResults      []schema.SLOResult
	budgetResults   []schema.ErrorBudgetResult
	recommendations []string
	passed          bool
}

// NewReportBuilder creates a builder with the given budget classification
// boundaries. A fresh builder reports passed until a check says otherwise.
func NewReportBuilder(warning, critical float64) *ReportBuilder {
	return &ReportBuilder{
		warning:  warning,
		critical: critical,
		passed:   true,
	}
}

// CheckSLO evaluates one objective and records its result, preserving
// insertion order. On failure it appends a recommendation and latches the
// aggregate failure flag. Returns whether the comparison held.
func (b *ReportBuilder) CheckSLO(name string, current, target float64, op schema.CompareOp) bool {
	passed := op.Evaluate(current, target)

	b.sloResults = append(b.sloResults, schema.SLOResult{
		Name:    name,
		Current: current,
		Target:  target,
		Op:      op,
		Passed:  passed,
	})

	if !passed {
		b.recommendations = append(b.recommendations,
			fmt.Sprintf("%s SLO failed: %.2f %s %.2f", name, current, op, target))
		b.passed = false
	}

	return passed
}

// CheckErrorBudget classifies one budget consumption figure and records the
// result. CRITICAL status appends a recommendation and latches the aggregate
// failure flag; WARNING is reported but does not fail the gate. Returns true
// unless the status is CRITICAL.
func (b *ReportBuilder) CheckErrorBudget(name string, consumption float64) bool {
	status := schema.ClassifyBudget(consumption, b.warning, b.critical)

	b.budgetResults = append(b.budgetResults, schema.ErrorBudgetResult{
		Name:        name,
		Consumption: consumption,
		Threshold:   b.critical,
		Status:      status,
	})

	if status == schema.BudgetCritical {
		b.recommendations = append(b.recommendations,
			fmt.Sprintf("%s error budget critical: %.1f%% consumed (threshold %.1f%%)", name, consumption, b.critical))
		b.passed = false
	}

	return status != schema.BudgetCritical
}

// Build assembles the final CheckReport. The builder should not be reused
// after this call.
func (b *ReportBuilder) Build() *schema.CheckReport {
	recs := b.recommendations
	if recs == nil {
		recs = []string{}
	}
	return &schema.CheckReport{
		Passed:          b.passed,
		GeneratedAt:     time.Now(),
		SLOResults:      b.sloResults,
		BudgetResults:   b.budgetResults,
		Recommendations: recs,
	}
}

// RunChecks runs every objective check followed by every budget check, both
// in definition order, and returns the assembled report. Pure aggregation:
// all decisions live in CheckSLO and CheckErrorBudget.
func RunChecks(defs []schema.SLODefinition, snap schema.MetricSnapshot, warning, critical float64) *schema.CheckReport {
	builder := NewReportBuilder(warning, critical)

	for _, def := range defs {
		builder.CheckSLO(def.Name, snap.Values[def.Name], def.Target, def.Op)
	}
	for _, def := range defs {
		builder.CheckErrorBudget(def.Name, snap.Consumption[def.Name])
	}

	return builder.Build()
}
