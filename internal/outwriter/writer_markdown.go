package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"
)

// Report artifact file names. Pipelines pick these up by fixed name.
const (
	reportJSONName     = "slo_report.json"
	reportMarkdownName = "slo_report.md"
)

// SaveReportArtifacts writes the machine-readable and human-readable report
// artifacts into dir, creating it if needed. Returns the paths written.
func SaveReportArtifacts(report *schema.CheckReport, dir string) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create reports directory %q: %w", dir, err)
	}

	jsonPath := filepath.Join(dir, reportJSONName)
	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", jsonPath, err)
	}
	if err := writeJSON(jsonFile, report); err != nil {
		_ = jsonFile.Close()
		return "", "", err
	}
	if err := jsonFile.Close(); err != nil {
		return "", "", err
	}

	mdPath := filepath.Join(dir, reportMarkdownName)
	if err := os.WriteFile(mdPath, []byte(renderMarkdownReport(report)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", mdPath, err)
	}

	return jsonPath, mdPath, nil
}

// renderMarkdownReport builds the markdown summary for humans reviewing a
// pipeline run.
func renderMarkdownReport(report *schema.CheckReport) string {
	var sb strings.Builder

	sb.WriteString("# SLO Gate Report\n\n")
	fmt.Fprintf(&sb, "**Verdict:** %s\n\n", contract.GetPassLabel(report.Passed))
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "**Checks:** %d\n\n", report.TotalChecks())

	sb.WriteString("## SLO Compliance\n\n")
	sb.WriteString("| SLO | Current | Op | Target | Status |\n")
	sb.WriteString("| --- | ---: | :---: | ---: | :---: |\n")
	for _, r := range report.SLOResults {
		fmt.Fprintf(&sb, "| %s | %.2f | %s | %.2f | %s |\n",
			r.Name, r.Current, r.Op, r.Target, contract.GetPassLabel(r.Passed))
	}
	sb.WriteString("\n")

	sb.WriteString("## Error Budgets\n\n")
	sb.WriteString("| SLO | Consumed % | Critical % | Status |\n")
	sb.WriteString("| --- | ---: | ---: | :---: |\n")
	for _, r := range report.BudgetResults {
		fmt.Fprintf(&sb, "| %s | %.1f | %.1f | %s |\n",
			r.Name, r.Consumption, r.Threshold, r.Status)
	}
	sb.WriteString("\n")

	sb.WriteString("## Recommendations\n\n")
	if len(report.Recommendations) == 0 {
		sb.WriteString("No recommendations. All objectives within target.\n\n")
	} else {
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", rec)
		}
		sb.WriteString("\n")
	}

	if report.Passed {
		sb.WriteString("The release gate passed. Proceed with the rollout.\n")
	} else {
		sb.WriteString("The release gate failed. Hold the rollout and work through the recommendations above.\n")
	}

	return sb.String()
}
