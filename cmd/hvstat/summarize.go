package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

var (
	exportFormat string
	exportOut    string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print the summary of a selection as JSON",
	Example: `  hvstat summarize -f hvstat_africa_data_v1.0.csv --country Kenya
  hvstat summarize --country Kenya --admin1 "Rift Valley"`,
	RunE: runSummarize,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the summary of a selection as a PDF, Excel or CSV report",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "excel", "Report format (pdf, excel, csv)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: derived from the selection)")
}

// summarizeFile loads path and aggregates sel
func summarizeFile(ctx context.Context, path string, sel harvest.Selection) (*harvest.Summary, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	table, err := dataset.NewFileLoader(path).Load(ctx)
	if err != nil {
		return nil, err
	}

	summary, ok := harvest.Summarize(table.Records, sel)
	if !ok {
		return nil, fmt.Errorf("no records for %s", export.SelectionLabel(sel))
	}
	return summary, nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	summary, err := summarizeFile(ctx, datasetPath(), selection())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(strings.ToLower(exportFormat))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	sel := selection()
	summary, err := summarizeFile(ctx, datasetPath(), sel)
	if err != nil {
		return err
	}

	svc := export.NewService()
	out := exportOut
	if out == "" {
		out = strings.ToLower(strings.ReplaceAll(export.SelectionLabel(sel), " / ", "_"))
		out = strings.ReplaceAll(out, " ", "_") + svc.GetFileExtension(format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := svc.ExportToWriter(export.SummaryReport(summary, ""), format, f); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s (%d bytes)\n", out, info.Size())
	return nil
}
