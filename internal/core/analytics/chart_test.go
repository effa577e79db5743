package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, MetricYield, m)

	m, err = ParseMetric("area")
	require.NoError(t, err)
	assert.Equal(t, "ha", m.Unit())

	_, err = ParseMetric("price")
	assert.Error(t, err)
}

func TestSeriesToLineChart(t *testing.T) {
	series := []harvest.Series{
		{Label: "Nakuru", Points: []harvest.Point{{Year: 2015, Production: 400}, {Year: 2018, Production: 100}}},
		{Label: "Uasin Gishu", Points: []harvest.Point{{Year: 2015, Production: 600}}},
	}

	chart := SeriesToLineChart(series, MetricProduction)
	assert.Equal(t, "line", chart.Type)
	assert.Equal(t, []string{"2015", "2018"}, chart.Labels)
	require.Len(t, chart.Data, 2)
	assert.Equal(t, []interface{}{400.0, 100.0}, chart.Data[0].Values)
	assert.Equal(t, []interface{}{600.0, nil}, chart.Data[1].Values)
	assert.NotEqual(t, chart.Data[0].Color, chart.Data[1].Color)
}

func TestSingleSeriesUsesMetricColor(t *testing.T) {
	series := []harvest.Series{{Label: harvest.TotalLabel, Points: []harvest.Point{{Year: 2020, Yield: 1.5}}}}
	chart := SeriesToLineChart(series, MetricArea)
	assert.Equal(t, "#ff9800", chart.Data[0].Color)
	assert.Equal(t, "Area Harvested (ha)", chart.Title)
}

func TestSummaryCharts(t *testing.T) {
	records := []harvest.Record{
		{Country: "Kenya", Admin1: "Nyanza", Product: "Maize", SeasonName: "Long rains", PlantingYear: harvest.Year(2018), Production: 3000, Area: 1000},
		{Country: "Kenya", Admin1: "Coast", Product: "Maize", SeasonName: "Short rains", PlantingYear: harvest.Year(2020), Production: 1000, Area: 500},
		{Country: "Kenya", Admin1: "Coast", Product: "Rice", Production: 20, Area: 10},
	}
	summary, ok := harvest.Summarize(records, harvest.Selection{Country: "Kenya"})
	require.True(t, ok)

	bar := CropsToBarChart(summary, MetricProduction)
	assert.Equal(t, []string{"Maize", "Rice"}, bar.Labels)
	assert.Equal(t, []interface{}{4000.0, 20.0}, bar.Data[0].Values)

	maize, _ := summary.Crop("Maize")
	pie := SeasonsToPieChart(maize)
	assert.Equal(t, []string{"Long rains", "Short rains"}, pie.Labels)
	assert.Equal(t, []float64{3000, 1000}, pie.Values)

	cards := SummaryStatCards(summary)
	values := map[string]string{}
	for _, c := range cards {
		values[c.Title] = c.Value
	}
	assert.Equal(t, "2", values["Unique Crops"])
	assert.Equal(t, "4.0K t", values["Total Production"])
	assert.Equal(t, "2018 to 2020", values["Years Covered (Planting Year)"])
	assert.Equal(t, "2019", values["Gaps in Years"])
	assert.Equal(t, "2", values["Admin-1 Units"])
	_, hasAdmin2 := values["Admin-2 Units"]
	assert.False(t, hasAdmin2)
}

func TestFormatStatValue(t *testing.T) {
	assert.Equal(t, "2.5M", formatStatValue(2500000, "number"))
	assert.Equal(t, "950", formatStatValue(950, "number"))
	assert.Equal(t, "12.5%", formatStatValue(12.5, "percentage"))
	assert.Equal(t, "None", formatGaps(nil))
	assert.Equal(t, "2001, 2003", formatGaps([]int{2001, 2003}))
}
