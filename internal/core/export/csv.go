package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter flattens a report into one CSV stream. Every section
// opens with a "# Title" row, followed by its lines and its table.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export exports the report to CSV format
func (c *CSVExporter) Export(report *Report, writer io.Writer) error {
	w := csv.NewWriter(writer)

	for i, section := range report.Sections {
		if i > 0 {
			if err := w.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := w.Write([]string{"# " + section.Title}); err != nil {
			return err
		}
		for _, line := range section.Lines {
			if err := w.Write([]string{line}); err != nil {
				return err
			}
		}
		if section.Table == nil {
			continue
		}
		if err := w.Write(section.Table.Headers); err != nil {
			return err
		}
		for _, row := range section.Table.Rows {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatCell(v)
			}
			if err := w.Write(cells); err != nil {
				return err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for CSV files
func (c *CSVExporter) GetContentType() string {
	return "text/csv"
}

// GetFileExtension returns the file extension for CSV files
func (c *CSVExporter) GetFileExtension() string {
	return ".csv"
}
