package histstore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/slogate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateReport returns a passing report with one SLO and one budget outcome.
func gateReport() *schema.CheckReport {
	return &schema.CheckReport{
		Passed:      true,
		GeneratedAt: time.Now(),
		SLOResults: []schema.SLOResult{
			{Name: "availability", Current: 99.95, Target: 99.9, Op: schema.OpGTE, Passed: true},
		},
		BudgetResults: []schema.ErrorBudgetResult{
			{Name: "availability", Consumption: 45.2, Threshold: 80.0, Status: schema.BudgetOK},
		},
		Recommendations: []string{},
	}
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// RecordRun should return 0 for NoneBackend
	runID, err := store.RecordRun(time.Now(), gateReport(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Status reports a disconnected store
	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalRuns)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	outcomes, err := store.GetAllOutcomes()
	assert.NoError(t, err)
	assert.Empty(t, outcomes)

	assert.NoError(t, store.Close())
}

func TestHistoryStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	configParams := map[string]any{
		"budget-warning":  50.0,
		"budget-critical": 80.0,
	}
	runID, err := store.RecordRun(time.Now(), gateReport(), configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, int64(2), status.TotalChecks)
	assert.Equal(t, int64(1), status.TableSizes["slogate_gate_runs"])
	assert.Equal(t, int64(2), status.TableSizes["slogate_check_outcomes"])
}

func TestHistoryStore_MultipleRuns(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	var runIDs []int64
	for i := range 3 {
		id, err := store.RecordRun(time.Now(), gateReport(), map[string]any{"run": i})
		require.NoError(t, err)
		runIDs = append(runIDs, id)
	}

	// Run IDs are unique and monotonic
	assert.Equal(t, 3, len(runIDs))
	assert.Less(t, runIDs[0], runIDs[1])
	assert.Less(t, runIDs[1], runIDs[2])

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.TotalRuns)
	assert.Equal(t, runIDs[2], status.LastRunID)
}

func TestHistoryStore_GetAllRuns(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Empty store
	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	failing := gateReport()
	failing.Passed = false
	failing.Recommendations = []string{"availability SLO failed: 99.50 >= 99.90"}

	firstID, err := store.RecordRun(time.Now(), gateReport(), map[string]any{"run": 1})
	require.NoError(t, err)
	secondID, err := store.RecordRun(time.Now(), failing, map[string]any{"run": 2})
	require.NoError(t, err)

	runs, err = store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, firstID, runs[0].RunID)
	assert.True(t, runs[0].Passed)
	assert.Equal(t, int32(2), runs[0].TotalChecks)
	assert.False(t, runs[0].RunTime.IsZero())

	assert.Equal(t, secondID, runs[1].RunID)
	assert.False(t, runs[1].Passed)

	// Recommendations round-trip through the JSON column
	require.NotNil(t, runs[1].Recommendations)
	var recs []string
	require.NoError(t, json.Unmarshal([]byte(*runs[1].Recommendations), &recs))
	assert.Equal(t, failing.Recommendations, recs)

	require.NotNil(t, runs[1].ConfigParams)
	var params map[string]any
	require.NoError(t, json.Unmarshal([]byte(*runs[1].ConfigParams), &params))
	assert.Equal(t, float64(2), params["run"])
}

func TestHistoryStore_GetAllOutcomes(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Empty store
	outcomes, err := store.GetAllOutcomes()
	assert.NoError(t, err)
	assert.Empty(t, outcomes)

	runID, err := store.RecordRun(time.Now(), gateReport(), map[string]any{"test": "outcomes"})
	require.NoError(t, err)

	outcomes, err = store.GetAllOutcomes()
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	// Rows sort by check kind, budget before slo
	budget := outcomes[0]
	assert.Equal(t, runID, budget.RunID)
	assert.Equal(t, "availability", budget.Name)
	assert.Equal(t, schema.BudgetCheck, budget.Kind)
	assert.InDelta(t, 45.2, budget.CurrentValue, 1e-9)
	assert.InDelta(t, 80.0, budget.TargetValue, 1e-9)
	assert.Equal(t, "", budget.Op)
	assert.Equal(t, "OK", budget.Status)
	assert.True(t, budget.Passed)

	slo := outcomes[1]
	assert.Equal(t, runID, slo.RunID)
	assert.Equal(t, "availability", slo.Name)
	assert.Equal(t, schema.SLOCheck, slo.Kind)
	assert.InDelta(t, 99.95, slo.CurrentValue, 1e-9)
	assert.InDelta(t, 99.9, slo.TargetValue, 1e-9)
	assert.Equal(t, ">=", slo.Op)
	assert.Equal(t, "PASS", slo.Status)
	assert.True(t, slo.Passed)
}

func TestHistoryStore_CriticalBudgetOutcome(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	report := gateReport()
	report.Passed = false
	report.BudgetResults[0].Consumption = 85.0
	report.BudgetResults[0].Status = schema.BudgetCritical

	_, err = store.RecordRun(time.Now(), report, nil)
	require.NoError(t, err)

	outcomes, err := store.GetAllOutcomes()
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "CRITICAL", outcomes[0].Status)
	assert.False(t, outcomes[0].Passed)
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}
