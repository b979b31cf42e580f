package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSLODefinitions displays the configured service level objectives.
// This is a static display that does not require a metric snapshot.
func PrintSLODefinitions(defs []schema.SLODefinition, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w,
				[]string{"name", "target", "op", "window_days", "budget_allowance"},
				func(csvWriter *csv.Writer) error {
					for _, def := range defs {
						rec := []string{
							def.Name,
							fmtFloat(def.Target),
							string(def.Op),
							strconv.Itoa(def.WindowDays),
							fmtFloat(def.BudgetAllowance),
						}
						if err := csvWriter.Write(rec); err != nil {
							return err
						}
					}
					return nil
				})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSLODefinitionsText(w, defs, fmtFloat)
		}, "Wrote text")
	}
}

// writeSLODefinitionsText displays SLO definitions in human-readable table format.
func writeSLODefinitionsText(w io.Writer, defs []schema.SLODefinition, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w, "🎯 Service Level Objectives"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"SLO", "Target", "Op", "Window (days)", "Budget %"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, def := range defs {
		data = append(data, []string{
			def.Name,
			fmtFloat(def.Target),
			string(def.Op),
			strconv.Itoa(def.WindowDays),
			fmtFloat(def.BudgetAllowance),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d objectives\n", len(defs))
	return err
}
