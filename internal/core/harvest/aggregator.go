package harvest

import (
	"sort"
	"strings"
)

// Summarize builds the nested summary for sel. It returns false when no
// record with a product falls inside the selection, or when sel itself is
// invalid (admin2 without admin1); callers render a "no data" state
// instead of a zero-filled summary. Use sel.Validate to tell the two apart.
func Summarize(records []Record, sel Selection) (*Summary, bool) {
	if sel.Validate() != nil {
		return nil, false
	}

	scope := inScope(records, sel)
	if len(scope) == 0 {
		return nil, false
	}

	level := sel.Level()
	totalProduction, totalArea := sums(scope)
	coverage := CoverageOf(scope)

	summary := &Summary{
		Selection: sel,
		Level:     level,
		Totals: Totals{
			RecordCount:     len(scope),
			TotalProduction: totalProduction,
			TotalArea:       totalArea,
			YearsCovered:    coverage.Label(),
			MinYear:         coverage.Min(),
			MaxYear:         coverage.Max(),
			YearGaps:        coverage.Gaps,
		},
	}

	switch level {
	case LevelCountry:
		n := len(distinct(scope, func(r Record) string { return r.Admin1 }))
		summary.Totals.Admin1Count = &n
	case LevelAdmin1:
		n := len(distinct(scope, func(r Record) string { return r.Admin2 }))
		summary.Totals.Admin2Count = &n
	}

	byCrop := groupBy(scope, func(r Record) string { return r.Product })
	for _, crop := range sortedKeys(byCrop) {
		detail := cropDetail(crop, byCrop[crop])
		if level == LevelCountry {
			pct := percentage(detail.TotalProduction, totalProduction)
			detail.PercentageOfCountryTotal = &pct
		}
		summary.Crops = append(summary.Crops, detail)
	}
	summary.Totals.UniqueCropCount = len(summary.Crops)

	return summary, true
}

func cropDetail(crop string, rows []Record) CropDetail {
	production, area := sums(rows)
	detail := CropDetail{
		Crop:            crop,
		TotalProduction: production,
		TotalArea:       area,
		AverageYield:    yieldOf(production, area),
	}

	bySeason := groupBy(rows, func(r Record) string { return r.SeasonName })
	for _, season := range sortedKeys(bySeason) {
		seasonRows := bySeason[season]
		sp, sa := sums(seasonRows)
		label := season
		if label == "" {
			label = NotAvailable
		}
		detail.Seasons = append(detail.Seasons, SeasonDetail{
			Season:            label,
			Production:        sp,
			PercentageOfCrop:  percentage(sp, production),
			Area:              sa,
			AverageYield:      yieldOf(sp, sa),
			ProductionSystems: joinDistinct(seasonRows, func(r Record) string { return r.CropProductionSystem }),
			PlantingMonths:    joinDistinct(seasonRows, func(r Record) string { return r.PlantingMonth }),
			HarvestMonths:     joinDistinct(seasonRows, func(r Record) string { return r.HarvestMonth }),
		})
	}
	return detail
}

// inScope keeps rows matching sel that name a product
func inScope(records []Record, sel Selection) []Record {
	var out []Record
	for _, r := range records {
		if r.Product != "" && sel.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func sums(rows []Record) (production, area float64) {
	for _, r := range rows {
		production += r.Production
		area += r.Area
	}
	return production, area
}

// yieldOf is production per hectare; zero area yields 0
func yieldOf(production, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return production / area
}

func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// groupBy partitions rows by key. Empty keys form their own group.
func groupBy(rows []Record, key func(Record) string) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range rows {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// distinct returns the sorted non-empty values of field
func distinct(rows []Record, field func(Record) string) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if v := field(r); v != "" {
			seen[v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func joinDistinct(rows []Record, field func(Record) string) string {
	values := distinct(rows, field)
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}
