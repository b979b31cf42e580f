package core

import (
	"testing"

	"github.com/huangsam/slogate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBuilderAllPassing(t *testing.T) {
	b := NewReportBuilder(schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.True(t, b.CheckSLO("availability", 99.95, 99.9, schema.OpGTE))
	assert.True(t, b.CheckSLO("error-rate", 0.05, 0.1, schema.OpLTE))
	assert.True(t, b.CheckErrorBudget("availability", 45.2))

	report := b.Build()
	assert.True(t, report.Passed)
	assert.Equal(t, 3, report.TotalChecks())
	assert.NotNil(t, report.Recommendations)
	assert.Empty(t, report.Recommendations)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestReportBuilderSLOFailureLatches(t *testing.T) {
	b := NewReportBuilder(schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.False(t, b.CheckSLO("availability", 99.5, 99.9, schema.OpGTE))
	// A later pass never un-fails the run
	assert.True(t, b.CheckSLO("latency", 98.5, 95.0, schema.OpGTE))

	report := b.Build()
	assert.False(t, report.Passed)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "availability SLO failed: 99.50 >= 99.90", report.Recommendations[0])
}

func TestReportBuilderBudgetWarningDoesNotFail(t *testing.T) {
	b := NewReportBuilder(schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.True(t, b.CheckErrorBudget("latency", 62.8))

	report := b.Build()
	assert.True(t, report.Passed)
	assert.Empty(t, report.Recommendations)
	require.Len(t, report.BudgetResults, 1)
	assert.Equal(t, schema.BudgetWarning, report.BudgetResults[0].Status)
}

func TestReportBuilderBudgetCriticalFails(t *testing.T) {
	b := NewReportBuilder(schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.False(t, b.CheckErrorBudget("availability", 85.0))

	report := b.Build()
	assert.False(t, report.Passed)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "availability error budget critical: 85.0% consumed (threshold 80.0%)", report.Recommendations[0])
	assert.Equal(t, schema.BudgetCritical, report.BudgetResults[0].Status)
}

func TestReportBuilderCriticalBoundaryInclusive(t *testing.T) {
	b := NewReportBuilder(schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)
	assert.False(t, b.CheckErrorBudget("availability", 80.0))
	assert.False(t, b.Build().Passed)
}

func TestRunChecksOrderingAndAggregation(t *testing.T) {
	defs := schema.DefaultSLODefinitions()
	snap := schema.MetricSnapshot{
		Values: map[string]float64{
			"availability": 99.95,
			"latency":      98.5,
			"error-rate":   0.05,
		},
		Consumption: map[string]float64{
			"availability": 45.2,
			"latency":      62.8,
			"error-rate":   30.1,
		},
	}

	report := RunChecks(defs, snap, schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.True(t, report.Passed)
	require.Len(t, report.SLOResults, 3)
	require.Len(t, report.BudgetResults, 3)
	assert.Equal(t, 6, report.TotalChecks())

	// Results follow definition order for both check kinds
	for i, def := range defs {
		assert.Equal(t, def.Name, report.SLOResults[i].Name)
		assert.Equal(t, def.Name, report.BudgetResults[i].Name)
	}

	// Statuses match the demo consumption figures
	assert.Equal(t, schema.BudgetOK, report.BudgetResults[0].Status)
	assert.Equal(t, schema.BudgetWarning, report.BudgetResults[1].Status)
	assert.Equal(t, schema.BudgetOK, report.BudgetResults[2].Status)
}

func TestRunChecksMultipleFailures(t *testing.T) {
	defs := schema.DefaultSLODefinitions()
	snap := schema.MetricSnapshot{
		Values: map[string]float64{
			"availability": 99.0, // misses 99.9
			"latency":      98.5,
			"error-rate":   0.5, // misses 0.1
		},
		Consumption: map[string]float64{
			"availability": 92.0, // critical
			"latency":      10.0,
			"error-rate":   30.1,
		},
	}

	report := RunChecks(defs, snap, schema.DefaultBudgetWarning, schema.DefaultBudgetCritical)

	assert.False(t, report.Passed)
	// Two SLO misses plus one critical budget
	require.Len(t, report.Recommendations, 3)
	assert.Contains(t, report.Recommendations[0], "availability SLO failed")
	assert.Contains(t, report.Recommendations[1], "error-rate SLO failed")
	assert.Contains(t, report.Recommendations[2], "availability error budget critical")
}
