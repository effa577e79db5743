package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export exports the report to PDF format
func (p *PDFExporter) Export(report *Report, writer io.Writer) error {
	style := report.Style

	orientation := "P"
	if style.Orientation == "landscape" {
		orientation = "L"
	}
	pageSize := style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}
	fontSize := style.FontSize
	if fontSize == 0 {
		fontSize = 9
	}

	// Only core fonts are embedded; custom families fall back to Arial
	const font = "Arial"

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if report.Title != "" {
		pdf.SetFont(font, "B", 16)
		pdf.Cell(0, 10, tr(report.Title))
		pdf.Ln(12)
	}
	if report.Description != "" {
		pdf.SetFont(font, "", fontSize)
		pdf.MultiCell(0, 5, tr(report.Description), "", "", false)
		pdf.Ln(4)
	}
	if !report.CreatedAt.IsZero() {
		pdf.SetFont(font, "I", 8)
		meta := fmt.Sprintf("Generated: %s", report.CreatedAt.Format("2006-01-02 15:04:05"))
		if report.Author != "" {
			meta += fmt.Sprintf(" | Author: %s", report.Author)
		}
		pdf.Cell(0, 5, tr(meta))
		pdf.Ln(10)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	drawHeader := func(headers []string, colWidth float64) {
		pdf.SetFont(font, "B", fontSize)
		fill := style.HeaderBgColor != ""
		if fill {
			r, g, b := hexToRGB(style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
		}
		for _, h := range headers {
			pdf.CellFormat(colWidth, 7, tr(h), "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(font, "", fontSize)
	}

	for _, section := range report.Sections {
		pdf.SetFont(font, "B", 12)
		pdf.Cell(0, 8, tr(section.Title))
		pdf.Ln(9)

		pdf.SetFont(font, "", fontSize)
		for _, line := range section.Lines {
			pdf.MultiCell(0, 5, tr(line), "", "", false)
		}

		if section.Table != nil && len(section.Table.Headers) > 0 {
			pdf.Ln(2)
			colWidth := usableWidth / float64(len(section.Table.Headers))
			drawHeader(section.Table.Headers, colWidth)

			for rowIdx, row := range section.Table.Rows {
				if style.AlternateRows {
					color := style.RowBgColor1
					if rowIdx%2 == 1 {
						color = style.RowBgColor2
					}
					r, g, b := hexToRGB(color)
					pdf.SetFillColor(r, g, b)
				}
				for colIdx, value := range row {
					align := "R"
					if _, isText := value.(string); isText || colIdx == 0 {
						align = "L"
					}
					pdf.CellFormat(colWidth, 6, tr(formatCell(value)), "1", 0, align, style.AlternateRows, 0, "")
				}
				pdf.Ln(-1)

				if pdf.GetY() > pageHeight-bottomMargin-10 {
					pdf.AddPage()
					drawHeader(section.Table.Headers, colWidth)
				}
			}
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts hex color to RGB values
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	// Default to white if invalid
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
