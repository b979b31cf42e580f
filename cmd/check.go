package cmd

import (
	"github.com/huangsam/slogate/core"
	"github.com/huangsam/slogate/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD release gating.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce SLO and error budget thresholds for CI/CD pipelines (fails build on violations)",
	Long: `Evaluate every configured service level objective and its error budget, then
decide whether a release is safe to ship.

Designed specifically for CI/CD integration - fails with non-zero exit code when
any SLO misses its target or any error budget reaches the critical threshold.
Budget consumption in the warning band is reported but does not block the release.

Default thresholds: warning at 50% budget consumption, critical at 80%

Use cases:
- Deployment gates - block rollouts while error budgets are spent
- Release validation - confirm SLO compliance before promoting a build
- Budget policy enforcement - keep teams honest about reliability spend
- Audit trail - persist every gate decision with --save and history tracking

Examples:
  # Gate against the built-in demo snapshot
  slogate check

  # Gate against a metrics export from the pipeline
  slogate check --snapshot-file metrics.json

  # Tighten targets for a canary release
  slogate check --targets-override "availability:99.95,error-rate:0.05"

  # Persist report artifacts for the release record
  slogate check --save --reports-dir artifacts/slo`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Exit code handling is done in ExecuteGateCheck
		if err := core.ExecuteGateCheck(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Gate check failed", err)
		}
	},
}
