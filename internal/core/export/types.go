package export

import (
	"fmt"
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
	FormatCSV   ExportFormat = "csv"
)

// ParseFormat validates a format name. "xlsx" is accepted for Excel.
func ParseFormat(s string) (ExportFormat, error) {
	switch s {
	case "pdf":
		return FormatPDF, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(report *Report, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// TableData is a header row plus data rows
type TableData struct {
	Headers []string
	Rows    [][]interface{}
}

// ReportSection is one titled block of a report: free text lines, an
// optional table, or both
type ReportSection struct {
	Title string
	Lines []string
	Table *TableData
}

// Report represents a multi-section document
type Report struct {
	Title       string
	Description string
	Author      string
	CreatedAt   time.Time
	Sections    []ReportSection
	Style       ExportStyle
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	// Common styling
	HeaderBold    bool
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	// Font settings
	FontFamily string
	FontSize   float64

	// Excel specific
	FreezeHeader bool
	AutoFilter   bool
	ColumnWidth  float64
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "landscape",
		PageSize:      "A4",
		HeaderBold:    true,
		HeaderBgColor: "#00796B",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontFamily:    "Arial",
		FontSize:      9,
		FreezeHeader:  true,
		AutoFilter:    true,
		ColumnWidth:   18,
	}
}

// formatCell renders a cell for text outputs (PDF, CSV)
func formatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return fmt.Sprintf("%.2f", x)
	case *float64:
		if x == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *x)
	case *int:
		if x == nil {
			return ""
		}
		return fmt.Sprintf("%d", *x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
