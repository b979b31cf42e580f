package cmd

import (
	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/internal/outwriter"
	"github.com/spf13/cobra"
)

// slosCmd displays the configured service level objectives.
var slosCmd = &cobra.Command{
	Use:   "slos",
	Short: "Display the configured service level objectives and their targets",
	Long: `Show every configured SLO with its target, comparison operator, evaluation
window, and error budget allowance.

No metric snapshot is fetched - this is purely informational.

Use this to:
- Verify what the gate will enforce before wiring it into a pipeline
- Review custom definitions loaded from .slogate.yaml
- Share reliability targets with your team

Examples:
  # Show objectives as a table
  slogate slos

  # Export objectives for documentation
  slogate slos --output json --output-file slos.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteSLODefinitions(cfg.SLOs, cfg); err != nil {
			contract.LogFatal("Failed to write SLO definitions", err)
		}
	},
}
