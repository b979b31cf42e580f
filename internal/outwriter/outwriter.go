// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCheckReport prints a gate check report using the configured output format.
func (ow *OutWriter) WriteCheckReport(report *schema.CheckReport, cfg *contract.Config, duration time.Duration) error {
	return PrintCheckReport(report, cfg, duration)
}

// WriteSLODefinitions prints the configured SLO definitions using the configured output format.
func (ow *OutWriter) WriteSLODefinitions(defs []schema.SLODefinition, cfg *contract.Config) error {
	return PrintSLODefinitions(defs, cfg)
}
