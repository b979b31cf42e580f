package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCheckReport outputs the gate check report, dispatching based on the
// output format configured.
func PrintCheckReport(report *schema.CheckReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.CheckReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.CheckReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReport(csvWriter, report, fmtFloat)
	}, "Wrote CSV")
}

// writeReportTables generates and writes the human-readable tables.
func writeReportTables(report *schema.CheckReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if err := writeSLOTable(report.SLOResults, cfg, fmtFloat, writer); err != nil {
		return err
	}
	if err := writeBudgetTable(report.BudgetResults, cfg, fmtFloat, writer); err != nil {
		return err
	}
	if err := writeRecommendations(report.Recommendations, writer); err != nil {
		return err
	}

	verdict := contract.GetPassLabel(report.Passed)
	if cfg.UseColors {
		verdict = contract.GetColorPassLabel(report.Passed)
	}
	if _, err := fmt.Fprintf(writer, "Release gate: %s (%d checks)\n", verdict, report.TotalChecks()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeSLOTable renders the SLO compliance table.
func writeSLOTable(results []schema.SLOResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, "SLO Compliance"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"SLO", "Current", "Op", "Target", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range results {
		label := contract.GetPassLabel(r.Passed)
		if cfg.UseColors {
			label = contract.GetColorPassLabel(r.Passed)
		}
		data = append(data, []string{
			truncateName(r.Name, maxName),
			fmtFloat(r.Current),
			string(r.Op),
			fmtFloat(r.Target),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeBudgetTable renders the error budget table.
func writeBudgetTable(results []schema.ErrorBudgetResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, "Error Budgets"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"SLO", "Consumed %", "Critical %", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range results {
		status := string(r.Status)
		if cfg.UseColors {
			status = contract.GetColorBudgetStatus(r.Status)
		}
		data = append(data, []string{
			truncateName(r.Name, maxName),
			fmtFloat(r.Consumption),
			fmtFloat(r.Threshold),
			status,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRecommendations lists the remediation hints, or an explicit note when
// there are none so readers know the section was not dropped.
func writeRecommendations(recommendations []string, writer io.Writer) error {
	if len(recommendations) == 0 {
		_, err := fmt.Fprintln(writer, "No recommendations. All objectives within target.")
		return err
	}

	if _, err := fmt.Fprintln(writer, "Recommendations:"); err != nil {
		return err
	}
	for _, rec := range recommendations {
		if _, err := fmt.Fprintf(writer, "  - %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForReport writes the gate check report in CSV format. SLO and
// budget rows share one schema with a kind discriminator.
func writeCSVResultsForReport(w *csv.Writer, report *schema.CheckReport, fmtFloat func(float64) string) error {
	header := []string{
		"kind",
		"name",
		"current",
		"op",
		"target",
		"status",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range report.SLOResults {
		rec := []string{
			string(schema.SLOCheck),
			r.Name,
			fmtFloat(r.Current),
			string(r.Op),
			fmtFloat(r.Target),
			contract.GetPassLabel(r.Passed),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	for _, r := range report.BudgetResults {
		rec := []string{
			string(schema.BudgetCheck),
			r.Name,
			fmtFloat(r.Consumption),
			"",
			fmtFloat(r.Threshold),
			string(r.Status),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
