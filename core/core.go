// Package core holds the gate evaluation logic for slogate.
package core

import (
	"fmt"

	"github.com/huangsam/slogate/schema"
)

// ValidateSnapshot verifies that the snapshot carries a value and a budget
// consumption figure for every configured objective. Evaluation never runs
// against a partial snapshot; a missing metric is an operational failure,
// not a domain violation.
func ValidateSnapshot(defs []schema.SLODefinition, snap schema.MetricSnapshot) error {
	for _, def := range defs {
		if _, ok := snap.Values[def.Name]; !ok {
			return fmt.Errorf("snapshot is missing a value for slo %q", def.Name)
		}
		if _, ok := snap.Consumption[def.Name]; !ok {
			return fmt.Errorf("snapshot is missing budget consumption for slo %q", def.Name)
		}
	}
	return nil
}
