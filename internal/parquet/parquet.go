// Package parquet provides data structures and functions for exporting slogate
// run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/slogate/schema"
	"github.com/parquet-go/parquet-go"
)

// GateRun represents a single release gate run with metadata.
// This struct maps to the slogate_gate_runs database table.
type GateRun struct {
	// RunID is the unique identifier for this gate run
	RunID int64 `parquet:"run_id,snappy"`

	// RunTime is when the gate ran (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// Passed is the overall gate verdict
	Passed bool `parquet:"passed,snappy"`

	// TotalChecks is the number of checks evaluated in this run
	TotalChecks int32 `parquet:"total_checks,snappy"`

	// Recommendations contains the JSON-encoded remediation hints (nullable)
	Recommendations *string `parquet:"recommendations,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// CheckOutcome represents a single objective or budget outcome within a run.
// This struct maps to the slogate_check_outcomes database table.
type CheckOutcome struct {
	// RunID references the parent gate run
	RunID int64 `parquet:"run_id,snappy"`

	// SLOName is the objective this outcome belongs to
	SLOName string `parquet:"slo_name,snappy"`

	// CheckKind distinguishes objective checks from budget checks
	CheckKind string `parquet:"check_kind,snappy"`

	// CurrentValue is the measured value (metric value or budget consumption)
	CurrentValue float64 `parquet:"current_value,snappy"`

	// TargetValue is the threshold the check ran against
	TargetValue float64 `parquet:"target_value,snappy"`

	// CompareOp is the comparison operator for objective checks (empty for budgets)
	CompareOp string `parquet:"compare_op,snappy"`

	// Status is the outcome label (PASS/FAIL or OK/WARNING/CRITICAL)
	Status string `parquet:"status,snappy"`

	// Passed indicates whether this check held the gate open
	Passed bool `parquet:"passed,snappy"`
}

// WriteGateRunsParquet writes a slice of GateRun structs to a Parquet file.
func WriteGateRunsParquet(data []GateRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the GateRun struct tags
	writer := parquet.NewGenericWriter[GateRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCheckOutcomesParquet writes a slice of CheckOutcome structs to a Parquet file.
func WriteCheckOutcomesParquet(data []CheckOutcome, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the CheckOutcome struct tags
	writer := parquet.NewGenericWriter[CheckOutcome](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchGateRuns generates sample GateRun data for demonstration.
func MockFetchGateRuns() []GateRun {
	now := time.Now()
	recommendations2 := `["latency SLO failed: 90.00 >= 95.00","latency error budget critical: 85.0% consumed (threshold 80.0%)"]`
	configParams1 := `{"budget_warning":50,"budget_critical":80}`
	configParams2 := `{"budget_warning":50,"budget_critical":80}`

	return []GateRun{
		{
			RunID:           1,
			RunTime:         now.Add(-2 * time.Hour),
			Passed:          true,
			TotalChecks:     6,
			Recommendations: nil, // Passing run - nullable field
			ConfigParams:    &configParams1,
		},
		{
			RunID:           2,
			RunTime:         now.Add(-1 * time.Hour),
			Passed:          false,
			TotalChecks:     6,
			Recommendations: &recommendations2,
			ConfigParams:    &configParams2,
		},
		{
			RunID:           3,
			RunTime:         now.Add(-10 * time.Minute),
			Passed:          true,
			TotalChecks:     6,
			Recommendations: nil, // No recommendations - nullable field
			ConfigParams:    nil, // No config stored - nullable field
		},
	}
}

// MockFetchCheckOutcomes generates sample CheckOutcome data for demonstration.
func MockFetchCheckOutcomes() []CheckOutcome {
	return []CheckOutcome{
		{
			RunID:        1,
			SLOName:      "availability",
			CheckKind:    "slo",
			CurrentValue: 99.95,
			TargetValue:  99.9,
			CompareOp:    ">=",
			Status:       "PASS",
			Passed:       true,
		},
		{
			RunID:        1,
			SLOName:      "availability",
			CheckKind:    "budget",
			CurrentValue: 45.2,
			TargetValue:  80.0,
			CompareOp:    "", // Budgets have no operator
			Status:       "OK",
			Passed:       true,
		},
		{
			RunID:        2,
			SLOName:      "latency",
			CheckKind:    "slo",
			CurrentValue: 90.0,
			TargetValue:  95.0,
			CompareOp:    ">=",
			Status:       "FAIL",
			Passed:       false,
		},
		{
			RunID:        2,
			SLOName:      "latency",
			CheckKind:    "budget",
			CurrentValue: 85.0,
			TargetValue:  80.0,
			CompareOp:    "",
			Status:       "CRITICAL",
			Passed:       false,
		},
	}
}

// ConvertGateRunRecords converts schema.GateRunRecord to GateRun for Parquet export.
func ConvertGateRunRecords(records []schema.GateRunRecord) []GateRun {
	result := make([]GateRun, len(records))
	for i, record := range records {
		result[i] = GateRun{
			RunID:           record.RunID,
			RunTime:         record.RunTime,
			Passed:          record.Passed,
			TotalChecks:     record.TotalChecks,
			Recommendations: record.Recommendations,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertCheckOutcomeRecords converts schema.CheckOutcomeRecord to CheckOutcome for Parquet export.
func ConvertCheckOutcomeRecords(records []schema.CheckOutcomeRecord) []CheckOutcome {
	result := make([]CheckOutcome, len(records))
	for i, record := range records {
		result[i] = CheckOutcome{
			RunID:        record.RunID,
			SLOName:      record.Name,
			CheckKind:    string(record.Kind),
			CurrentValue: record.CurrentValue,
			TargetValue:  record.TargetValue,
			CompareOp:    record.Op,
			Status:       record.Status,
			Passed:       record.Passed,
		}
	}
	return result
}
