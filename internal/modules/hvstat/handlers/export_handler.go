package handlers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
)

type ExportHandler struct {
	statsService  *services.StatsService
	exportService *export.Service
}

func NewExportHandler(statsService *services.StatsService, exportService *export.Service) *ExportHandler {
	return &ExportHandler{
		statsService:  statsService,
		exportService: exportService,
	}
}

// ExportSummary godoc
// @Summary Download a summary report
// @Description Overview, crops and seasons of a selection as PDF, Excel or CSV
// @Tags Export
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param country query string true "Country"
// @Param admin_level query int false "0, 1 or 2"
// @Param admin_1_name query string false "Admin-1 unit"
// @Param admin_2_name query string false "Admin-2 unit"
// @Param format query string false "pdf, excel or csv" default(excel)
// @Param title query string false "Report title"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/export [get]
func (h *ExportHandler) ExportSummary(c *fiber.Ctx) error {
	format, err := export.ParseFormat(strings.ToLower(c.Query("format", string(export.FormatExcel))))
	if err != nil {
		return badRequest(c, "%s", err.Error())
	}

	sel, err := selectionFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	summary, err := h.statsService.Summary(sel)
	if err != nil {
		return respondError(c, err)
	}

	report := export.SummaryReport(summary, c.Query("title"))
	data, contentType, err := h.exportService.Export(report, format)
	if err != nil {
		return respondError(c, err)
	}

	c.Attachment(downloadName(sel, h.exportService.GetFileExtension(format)))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// ExportRecords godoc
// @Summary Download filtered raw records
// @Description Rows of the source table for the given countries, crop and planting year
// @Tags Export
// @Produce text/csv
// @Param country query []string false "Country (repeatable), empty for all" collectionFormat(multi)
// @Param crop query string false "Crop, empty for all"
// @Param year query int false "Planting year, empty for all"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /api/records.csv [get]
func (h *ExportHandler) ExportRecords(c *fiber.Ctx) error {
	year, err := optionalYear(c)
	if err != nil {
		return respondError(c, err)
	}

	var countries []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("country") {
		for _, country := range strings.Split(string(raw), ",") {
			if country = strings.TrimSpace(country); country != "" {
				countries = append(countries, country)
			}
		}
	}

	filter := harvest.RecordFilter{
		Countries: countries,
		Crop:      strings.TrimSpace(c.Query("crop")),
		Year:      year,
	}
	records, err := h.statsService.Records(filter)
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, records); err != nil {
		return respondError(c, err)
	}

	c.Attachment("hvstat_records.csv")
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}

// downloadName builds a file name such as hvstat_kenya_rift_valley.xlsx
func downloadName(sel harvest.Selection, ext string) string {
	parts := []string{"hvstat", sel.Country}
	if sel.Admin1 != "" {
		parts = append(parts, sel.Admin1)
	}
	if sel.Admin2 != "" {
		parts = append(parts, sel.Admin2)
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, strings.Join(parts, "_"))
	return fmt.Sprintf("%s%s", strings.ToLower(name), ext)
}
