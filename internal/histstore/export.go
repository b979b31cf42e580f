package histstore

import (
	"errors"
	"fmt"

	"github.com/huangsam/slogate/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total gate runs: %d\n", status.TotalRuns)
	fmt.Printf("Total check outcomes: %d\n", status.TableSizes[checkOutcomesTable])

	// Retrieve all gate runs
	gateRuns, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve gate runs: %w", err)
	}

	// Retrieve all check outcomes
	checkOutcomes, err := store.GetAllOutcomes()
	if err != nil {
		return fmt.Errorf("failed to retrieve check outcomes: %w", err)
	}

	// Convert to Parquet format
	parquetGateRuns := parquet.ConvertGateRunRecords(gateRuns)
	parquetCheckOutcomes := parquet.ConvertCheckOutcomeRecords(checkOutcomes)

	// Write gate runs to Parquet
	gateRunsFile := outputFile + ".gate_runs.parquet"
	if err := parquet.WriteGateRunsParquet(parquetGateRuns, gateRunsFile); err != nil {
		return fmt.Errorf("failed to write gate runs: %w", err)
	}
	fmt.Printf("Exported %d gate runs to: %s\n", len(parquetGateRuns), gateRunsFile)

	// Write check outcomes to Parquet
	checkOutcomesFile := outputFile + ".check_outcomes.parquet"
	if err := parquet.WriteCheckOutcomesParquet(parquetCheckOutcomes, checkOutcomesFile); err != nil {
		return fmt.Errorf("failed to write check outcomes: %w", err)
	}
	fmt.Printf("Exported %d check outcome records to: %s\n", len(parquetCheckOutcomes), checkOutcomesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
