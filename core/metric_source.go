package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"
)

// StaticMetricSource serves a fixed demo snapshot. It stands in for a
// monitoring backend in local runs and examples; swap in a real source to
// gate against live data.
type StaticMetricSource struct{}

var _ contract.MetricSource = &StaticMetricSource{} // Compile-time check

// NewStaticMetricSource creates the built-in demo source.
func NewStaticMetricSource() *StaticMetricSource {
	return &StaticMetricSource{}
}

// Fetch returns the fixed demo snapshot.
func (s *StaticMetricSource) Fetch(_ context.Context) (schema.MetricSnapshot, error) {
	return schema.MetricSnapshot{
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
	}, nil
}

// FileMetricSource reads a snapshot from a JSON file. This is the shape a
// monitoring export or a CI artifact takes when the gate runs in a pipeline.
type FileMetricSource struct {
	path string
}

var _ contract.MetricSource = &FileMetricSource{} // Compile-time check

// NewFileMetricSource creates a source backed by the given JSON file.
func NewFileMetricSource(path string) *FileMetricSource {
	return &FileMetricSource{path: path}
}

// Fetch reads and decodes the snapshot file.
func (s *FileMetricSource) Fetch(_ context.Context) (schema.MetricSnapshot, error) {
	var snap schema.MetricSnapshot

	data, err := os.ReadFile(s.path)
	if err != nil {
		return snap, fmt.Errorf("failed to read snapshot file %q: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot file %q: %w", s.path, err)
	}
	if snap.Values == nil || snap.Consumption == nil {
		return snap, fmt.Errorf("snapshot file %q must contain both 'values' and 'consumption' maps", s.path)
	}
	return snap, nil
}

// SelectMetricSource picks the configured snapshot source: a file source
// when a snapshot file is set, the static demo source otherwise.
func SelectMetricSource(cfg *contract.Config) contract.MetricSource {
	if cfg.SnapshotFile != "" {
		return NewFileMetricSource(cfg.SnapshotFile)
	}
	return NewStaticMetricSource()
}
