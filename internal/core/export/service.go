package export

import (
	"bytes"
	"fmt"
	"io"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		exporters: map[ExportFormat]Exporter{
			FormatPDF:   NewPDFExporter(),
			FormatExcel: NewExcelExporter(),
			FormatCSV:   NewCSVExporter(),
		},
	}
}

func (s *Service) exporter(format ExportFormat) (Exporter, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return exporter, nil
}

// Export exports the report to the specified format
func (s *Service) Export(report *Report, format ExportFormat) ([]byte, string, error) {
	exporter, err := s.exporter(format)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := exporter.Export(report, &buf); err != nil {
		return nil, "", fmt.Errorf("%s export failed: %w", format, err)
	}

	return buf.Bytes(), exporter.GetContentType(), nil
}

// ExportToWriter exports the report to a writer
func (s *Service) ExportToWriter(report *Report, format ExportFormat, writer io.Writer) error {
	exporter, err := s.exporter(format)
	if err != nil {
		return err
	}
	return exporter.Export(report, writer)
}

// GetFileExtension returns the file extension for the given format
func (s *Service) GetFileExtension(format ExportFormat) string {
	if exporter, err := s.exporter(format); err == nil {
		return exporter.GetFileExtension()
	}
	return ".bin"
}
