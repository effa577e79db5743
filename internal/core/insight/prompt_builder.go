package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// maxPromptCrops keeps long crop lists out of the prompt
const maxPromptCrops = 10

const systemPrompt = `You are an agricultural statistics analyst.
You write short, factual narratives about subnational crop production in Africa.
Instructions:
- Use only the figures provided
- Mention the leading crops, seasonality and gaps in the record
- Never invent numbers
- Answer in at most three short paragraphs`

// BuildUserPrompt renders a summary as plain text for the model
func BuildUserPrompt(summary *harvest.Summary) string {
	var sb strings.Builder
	t := summary.Totals

	sb.WriteString(fmt.Sprintf("Area: %s (%s level)\n", export.SelectionLabel(summary.Selection), summary.Level))
	sb.WriteString(fmt.Sprintf("Records: %d, crops: %d\n", t.RecordCount, t.UniqueCropCount))
	sb.WriteString(fmt.Sprintf("Total production: %.0f t over %.0f ha\n", t.TotalProduction, t.TotalArea))
	sb.WriteString(fmt.Sprintf("Planting years covered: %s\n", t.YearsCovered))
	if len(t.YearGaps) > 0 {
		gaps := make([]string, len(t.YearGaps))
		for i, y := range t.YearGaps {
			gaps[i] = fmt.Sprint(y)
		}
		sb.WriteString(fmt.Sprintf("Missing years: %s\n", strings.Join(gaps, ", ")))
	}

	crops := append([]harvest.CropDetail(nil), summary.Crops...)
	sortByProduction(crops)
	if len(crops) > maxPromptCrops {
		crops = crops[:maxPromptCrops]
	}

	sb.WriteString("\n=== CROPS (by production) ===\n")
	for _, c := range crops {
		sb.WriteString(fmt.Sprintf("- %s: %.0f t, %.0f ha, yield %.2f t/ha", c.Crop, c.TotalProduction, c.TotalArea, c.AverageYield))
		if c.PercentageOfCountryTotal != nil {
			sb.WriteString(fmt.Sprintf(", %.1f%% of total", *c.PercentageOfCountryTotal))
		}
		sb.WriteString("\n")
		for _, s := range c.Seasons {
			sb.WriteString(fmt.Sprintf("    %s: %.1f%% of crop, planted %s, harvested %s\n",
				s.Season, s.PercentageOfCrop, s.PlantingMonths, s.HarvestMonths))
		}
	}

	return sb.String()
}

// sortByProduction orders crops largest first, ties by name
func sortByProduction(crops []harvest.CropDetail) {
	sort.Slice(crops, func(i, j int) bool {
		if crops[i].TotalProduction != crops[j].TotalProduction {
			return crops[i].TotalProduction > crops[j].TotalProduction
		}
		return crops[i].Crop < crops[j].Crop
	})
}
