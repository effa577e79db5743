package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// SummaryReport lays a harvest summary out as an Overview section, a
// per-crop table and a per-season table
func SummaryReport(summary *harvest.Summary, title string) *Report {
	if title == "" {
		title = "Crop statistics: " + SelectionLabel(summary.Selection)
	}

	t := summary.Totals
	overview := ReportSection{
		Title: "Overview",
		Lines: []string{
			fmt.Sprintf("Selection: %s (%s)", SelectionLabel(summary.Selection), summary.Level),
			fmt.Sprintf("Records: %d", t.RecordCount),
			fmt.Sprintf("Unique crops: %d", t.UniqueCropCount),
			fmt.Sprintf("Total production: %.2f t", t.TotalProduction),
			fmt.Sprintf("Total area: %.2f ha", t.TotalArea),
			fmt.Sprintf("Years covered (planting year): %s", t.YearsCovered),
			fmt.Sprintf("Missing years: %s", joinYears(t.YearGaps)),
		},
	}
	if t.Admin1Count != nil {
		overview.Lines = append(overview.Lines, fmt.Sprintf("Admin-1 units: %d", *t.Admin1Count))
	}
	if t.Admin2Count != nil {
		overview.Lines = append(overview.Lines, fmt.Sprintf("Admin-2 units: %d", *t.Admin2Count))
	}

	cropHeaders := []string{"Crop", "Production (t)", "Area (ha)", "Yield (t/ha)"}
	if summary.Level == harvest.LevelCountry {
		cropHeaders = append(cropHeaders, "% of Country")
	}
	crops := &TableData{Headers: cropHeaders}

	seasons := &TableData{
		Headers: []string{"Crop", "Season", "Production (t)", "% of Crop", "Area (ha)", "Yield (t/ha)", "Systems", "Planting Months", "Harvest Months"},
	}

	for _, c := range summary.Crops {
		row := []interface{}{c.Crop, c.TotalProduction, c.TotalArea, c.AverageYield}
		if summary.Level == harvest.LevelCountry {
			row = append(row, c.PercentageOfCountryTotal)
		}
		crops.Rows = append(crops.Rows, row)

		for _, s := range c.Seasons {
			seasons.Rows = append(seasons.Rows, []interface{}{
				c.Crop, s.Season, s.Production, s.PercentageOfCrop, s.Area, s.AverageYield,
				s.ProductionSystems, s.PlantingMonths, s.HarvestMonths,
			})
		}
	}

	return &Report{
		Title:       title,
		Description: "Aggregated from HVStat subnational crop statistics",
		CreatedAt:   time.Now(),
		Sections: []ReportSection{
			overview,
			{Title: "Crops", Table: crops},
			{Title: "Seasons", Table: seasons},
		},
		Style: DefaultStyle(),
	}
}

// SelectionLabel renders a selection as "Country / Admin1 / Admin2"
func SelectionLabel(sel harvest.Selection) string {
	parts := []string{sel.Country}
	if sel.Admin1 != "" {
		parts = append(parts, sel.Admin1)
	}
	if sel.Admin2 != "" {
		parts = append(parts, sel.Admin2)
	}
	return strings.Join(parts, " / ")
}

func joinYears(years []int) string {
	if len(years) == 0 {
		return "None"
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
