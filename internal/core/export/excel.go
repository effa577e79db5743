package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// ExcelExporter writes each report section to its own worksheet
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export exports the report to Excel format
func (e *ExcelExporter) Export(report *Report, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(report.Sections) == 0 {
		return fmt.Errorf("report has no sections")
	}

	headerStyle, err := e.createHeaderStyle(f, report.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: report.Style.FontFamily},
	})
	oddRowStyle, _ := e.createRowStyle(f, report.Style, report.Style.RowBgColor1)
	evenRowStyle := oddRowStyle
	if report.Style.AlternateRows {
		evenRowStyle, _ = e.createRowStyle(f, report.Style, report.Style.RowBgColor2)
	}

	used := make(map[string]bool)
	for i, section := range report.Sections {
		sheet := uniqueSheetName(section.Title, used)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}

		row := 1
		// Report title heads the first sheet only
		if i == 0 && report.Title != "" {
			f.SetCellValue(sheet, cellName(1, row), report.Title)
			f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), titleStyle)
			row++
			if report.Description != "" {
				f.SetCellValue(sheet, cellName(1, row), report.Description)
				row++
			}
			row++
		}

		f.SetCellValue(sheet, cellName(1, row), section.Title)
		f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), titleStyle)
		row++
		for _, line := range section.Lines {
			f.SetCellValue(sheet, cellName(1, row), line)
			row++
		}

		if section.Table == nil || len(section.Table.Headers) == 0 {
			continue
		}
		if len(section.Lines) > 0 {
			row++
		}

		headerRow := row
		for col, header := range section.Table.Headers {
			cell := cellName(col+1, row)
			f.SetCellValue(sheet, cell, header)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
		if width := report.Style.ColumnWidth; width > 0 {
			lastCol := columnNumberToName(len(section.Table.Headers))
			f.SetColWidth(sheet, "A", lastCol, width)
		}
		row++

		for rowIdx, values := range section.Table.Rows {
			style := oddRowStyle
			if rowIdx%2 == 1 {
				style = evenRowStyle
			}
			for col, value := range values {
				cell := cellName(col+1, row)
				f.SetCellValue(sheet, cell, excelValue(value))
				f.SetCellStyle(sheet, cell, cell, style)
			}
			row++
		}

		if report.Style.FreezeHeader {
			f.SetPanes(sheet, &excelize.Panes{
				Freeze:      true,
				YSplit:      headerRow,
				TopLeftCell: cellName(1, headerRow+1),
				ActivePane:  "bottomLeft",
			})
		}
		if report.Style.AutoFilter && len(section.Table.Rows) > 0 {
			lastCol := columnNumberToName(len(section.Table.Headers))
			f.AutoFilter(sheet, fmt.Sprintf("A%d:%s%d", headerRow, lastCol, row-1), nil)
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

// createHeaderStyle creates the header style
func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style ExportStyle) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   style.HeaderBold,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// createRowStyle creates a row style with background color
func (e *ExcelExporter) createRowStyle(f *excelize.File, style ExportStyle, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}

	// Only add fill if bgColor is not white
	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}

	return f.NewStyle(rowStyle)
}

// excelValue unwraps optional numbers so cells stay numeric
func excelValue(v interface{}) interface{} {
	switch x := v.(type) {
	case *float64:
		if x == nil {
			return ""
		}
		return *x
	case *int:
		if x == nil {
			return ""
		}
		return *x
	default:
		return v
	}
}

// uniqueSheetName makes a valid, unused worksheet name from title
func uniqueSheetName(title string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "Sheet"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}

	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := name
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		candidate = base + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnNumberToName(col), row)
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

// stripHashFromColor removes # from hex color codes
func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
