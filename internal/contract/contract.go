// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/slogate/schema"
)

// MetricSource supplies the metric snapshot for one gate evaluation.
// This is the seam where a real monitoring backend plugs in; the evaluation
// logic never knows where the numbers came from.
type MetricSource interface {
	// Fetch returns the current metric values and budget consumption.
	Fetch(ctx context.Context) (schema.MetricSnapshot, error)
}

// HistoryManager defines the interface for managing the history store.
// This allows the persistence layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for gate-run history storage.
type HistoryStore interface {
	// RecordRun stores a completed gate run and its per-check outcomes,
	// returning the run's unique ID.
	RecordRun(runTime time.Time, report *schema.CheckReport, configParams map[string]any) (int64, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves all gate runs from the store.
	GetAllRuns() ([]schema.GateRunRecord, error)

	// GetAllOutcomes retrieves all per-check outcomes from the store.
	GetAllOutcomes() ([]schema.CheckOutcomeRecord, error)

	// Close closes the underlying connection.
	Close() error
}
