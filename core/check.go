package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/internal/outwriter"
	"github.com/huangsam/slogate/schema"
)

// RunGateCheck fetches a snapshot and evaluates the configured gate. It has
// no console side effects and never exits; callers decide how to render the
// report and what exit code it maps to.
func RunGateCheck(ctx context.Context, cfg *contract.Config, source contract.MetricSource) (*schema.CheckReport, error) {
	snap, err := source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metric snapshot: %w", err)
	}

	if err := ValidateSnapshot(cfg.SLOs, snap); err != nil {
		return nil, err
	}

	return RunChecks(cfg.SLOs, snap, cfg.BudgetWarning, cfg.BudgetCritical), nil
}

// ExecuteGateCheck runs the check command for release gating.
// It evaluates every objective and budget, prints the report, writes the
// report artifacts, records the run in history, and exits non-zero when the
// gate fails.
func ExecuteGateCheck(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	start := time.Now()

	report, err := RunGateCheck(ctx, cfg, SelectMetricSource(cfg))
	if err != nil {
		return err
	}

	printCheckProgress(report, cfg)

	if err := outwriter.NewOutWriter().WriteCheckReport(report, cfg, time.Since(start)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Artifact writes are fatal on failure; a gate that cannot persist its
	// verdict must not report success.
	if cfg.SaveReports {
		jsonPath, mdPath, err := outwriter.SaveReportArtifacts(report, cfg.ReportsDir)
		if err != nil {
			return err
		}
		fmt.Printf("💾 Wrote %s and %s\n", jsonPath, mdPath)
	}

	recordHistory(cfg, mgr, report)

	if !report.Passed {
		fmt.Printf("%d recommendation(s) found\n", len(report.Recommendations))
		os.Exit(1)
	}
	return nil
}

// recordHistory stores the run in the history backend. History is
// supplemental to the gate verdict, so failures only warn.
func recordHistory(cfg *contract.Config, mgr contract.HistoryManager, report *schema.CheckReport) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"budget_warning":  cfg.BudgetWarning,
		"budget_critical": cfg.BudgetCritical,
		"slos":            sloParams(cfg.SLOs),
	}
	if _, err := store.RecordRun(report.GeneratedAt, report, params); err != nil {
		contract.LogWarn("could not record gate run in history", err)
	}
}

// sloParams renders the SLO definitions as a JSON-friendly value for the
// history config snapshot.
func sloParams(defs []schema.SLODefinition) json.RawMessage {
	data, err := json.Marshal(defs)
	if err != nil {
		return nil
	}
	return data
}

// printCheckProgress prints the per-check console lines grouped under the
// two section headers. Purely observational output; nothing parses it.
func printCheckProgress(report *schema.CheckReport, cfg *contract.Config) {
	printHeader("🎯 Running SLO Checks", cfg)
	for _, r := range report.SLOResults {
		icon := "✅"
		if !r.Passed {
			icon = "❌"
		}
		fmt.Printf("  %s %s: %.2f %s %.2f\n", icon, r.Name, r.Current, r.Op, r.Target)
	}
	fmt.Println()

	printHeader("📊 Checking Error Budgets", cfg)
	for _, r := range report.BudgetResults {
		fmt.Printf("  %s %s: %.1f%% of budget consumed\n", budgetIcon(r.Status), r.Name, r.Consumption)
	}
	fmt.Println()
}

// printHeader prints a section header, colorized when enabled.
func printHeader(text string, cfg *contract.Config) {
	if cfg.UseColors {
		_, _ = contract.HeaderColor.Println(text)
	} else {
		fmt.Println(text)
	}
}

// budgetIcon maps a budget status to its console indicator.
func budgetIcon(status schema.BudgetStatus) string {
	switch status {
	case schema.BudgetCritical:
		return "🚨"
	case schema.BudgetWarning:
		return "⚠️ "
	default:
		return "✅"
	}
}
