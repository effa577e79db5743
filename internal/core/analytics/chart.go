package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// palette cycles across series; the first entries match the explorer's
// production / area / yield colours
var palette = []string{"#00796b", "#ff9800", "#4caf50", "#3f51b5", "#e91e63", "#9c27b0", "#795548", "#607d8b"}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

// metricColor is the fixed colour the explorer uses per metric
func metricColor(m Metric) string {
	switch m {
	case MetricProduction:
		return palette[0]
	case MetricArea:
		return palette[1]
	default:
		return palette[2]
	}
}

func pointValue(p harvest.Point, m Metric) float64 {
	switch m {
	case MetricProduction:
		return p.Production
	case MetricArea:
		return p.Area
	default:
		return p.Yield
	}
}

// SeriesToLineChart lays yearly series out on a shared year axis.
// Years a series does not cover are nil so the line shows a break.
func SeriesToLineChart(series []harvest.Series, metric Metric) ChartData {
	yearSet := make(map[int]struct{})
	for _, s := range series {
		for _, p := range s.Points {
			yearSet[p.Year] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	labels := make([]string, len(years))
	position := make(map[int]int, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
		position[y] = i
	}

	data := make([]ChartSeries, 0, len(series))
	for i, s := range series {
		values := make([]interface{}, len(years))
		for _, p := range s.Points {
			values[position[p.Year]] = pointValue(p, metric)
		}
		color := colorAt(i)
		if len(series) == 1 {
			color = metricColor(metric)
		}
		data = append(data, ChartSeries{Name: s.Label, Values: values, Color: color})
	}

	return ChartData{
		Type:   "line",
		Title:  metric.Title(),
		Labels: labels,
		Data:   data,
		Unit:   metric.Unit(),
	}
}

// CropsToBarChart plots one bar per crop of the summary
func CropsToBarChart(summary *harvest.Summary, metric Metric) ChartData {
	labels := make([]string, len(summary.Crops))
	values := make([]interface{}, len(summary.Crops))

	for i, c := range summary.Crops {
		labels[i] = c.Crop
		switch metric {
		case MetricProduction:
			values[i] = c.TotalProduction
		case MetricArea:
			values[i] = c.TotalArea
		default:
			values[i] = c.AverageYield
		}
	}

	return ChartData{
		Type:   "bar",
		Title:  metric.Title(),
		Labels: labels,
		Data: []ChartSeries{
			{
				Name:   string(metric),
				Values: values,
				Color:  metricColor(metric),
			},
		},
		Unit: metric.Unit(),
	}
}

// SeasonsToPieChart splits a crop's production across its seasons
func SeasonsToPieChart(crop harvest.CropDetail) PieChartData {
	pie := PieChartData{
		Type:   "pie",
		Title:  crop.Crop + " production by season",
		Labels: make([]string, len(crop.Seasons)),
		Values: make([]float64, len(crop.Seasons)),
		Colors: make([]string, len(crop.Seasons)),
	}
	for i, s := range crop.Seasons {
		pie.Labels[i] = s.Season
		pie.Values[i] = s.Production
		pie.Colors[i] = colorAt(i)
	}
	return pie
}

// SummaryStatCards renders the totals panel
func SummaryStatCards(summary *harvest.Summary) []StatCard {
	t := summary.Totals
	cards := []StatCard{
		{Title: "Unique Crops", Value: strconv.Itoa(t.UniqueCropCount), Icon: "sprout"},
		{Title: "Total Production", Value: formatStatValue(t.TotalProduction, "tonnes"), Icon: "scale"},
		{Title: "Years Covered (Planting Year)", Value: t.YearsCovered, Icon: "calendar"},
		{Title: "Gaps in Years", Value: formatGaps(t.YearGaps), Icon: "alert"},
	}
	if t.Admin1Count != nil {
		cards = append(cards, StatCard{Title: "Admin-1 Units", Value: strconv.Itoa(*t.Admin1Count), Icon: "map"})
	}
	if t.Admin2Count != nil {
		cards = append(cards, StatCard{Title: "Admin-2 Units", Value: strconv.Itoa(*t.Admin2Count), Icon: "map"})
	}
	return cards
}

func formatGaps(gaps []int) string {
	if len(gaps) == 0 {
		return "None"
	}
	parts := make([]string, len(gaps))
	for i, g := range gaps {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ", ")
}

func formatStatValue(num float64, format string) string {
	switch format {
	case "percentage":
		return fmt.Sprintf("%.1f%%", num)
	case "tonnes":
		return formatStatValue(num, "number") + " t"
	case "number":
		if num >= 1000000 {
			return fmt.Sprintf("%.1fM", num/1000000)
		} else if num >= 1000 {
			return fmt.Sprintf("%.1fK", num/1000)
		}
		return fmt.Sprintf("%.0f", num)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}
