package harvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrouping(t *testing.T) {
	g, err := ParseGrouping(0, false)
	require.NoError(t, err)
	assert.Equal(t, GroupTotal, g)

	g, err = ParseGrouping(0, true)
	require.NoError(t, err)
	assert.Equal(t, GroupSeasonSystem, g)

	g, err = ParseGrouping(1, true)
	require.NoError(t, err)
	assert.Equal(t, GroupAdmin1, g)

	g, err = ParseGrouping(2, false)
	require.NoError(t, err)
	assert.Equal(t, GroupAdmin2, g)

	_, err = ParseGrouping(3, false)
	assert.Error(t, err)
}

func TestCropTimeSeriesTotal(t *testing.T) {
	series, ok := CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Maize", GroupTotal)
	require.True(t, ok)
	require.Len(t, series, 1)
	assert.Equal(t, TotalLabel, series[0].Label)
	assert.Equal(t, []Point{
		{Year: 2015, Production: 1000, Area: 450, Yield: 1000.0 / 450.0},
		{Year: 2018, Production: 100, Area: 80, Yield: 1.25},
	}, series[0].Points)
}

func TestCropTimeSeriesByAdmin(t *testing.T) {
	series, ok := CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Maize", GroupAdmin2)
	require.True(t, ok)
	require.Len(t, series, 2)
	assert.Equal(t, "Nakuru", series[0].Label)
	assert.Len(t, series[0].Points, 2)
	assert.Equal(t, "Uasin Gishu", series[1].Label)
	assert.Equal(t, 600.0, series[1].Points[0].Production)

	series, ok = CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Maize", GroupAdmin1)
	require.True(t, ok)
	require.Len(t, series, 1)
	assert.Equal(t, "Rift Valley", series[0].Label)
}

func TestCropTimeSeriesBySeasonSystem(t *testing.T) {
	series, ok := CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Maize", GroupSeasonSystem)
	require.True(t, ok)

	labels := make([]string, 0, len(series))
	for _, s := range series {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Long rains - All (PS)", "Long rains - Irrigated", "Short rains - All (PS)"}, labels)

	// Beans have no production system, so no series survives
	series, ok = CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Beans", GroupSeasonSystem)
	require.True(t, ok)
	assert.Empty(t, series)
}

func TestCropTimeSeriesSkipsRowsWithoutHarvestYear(t *testing.T) {
	series, ok := CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Sorghum", GroupTotal)
	require.True(t, ok)
	assert.Empty(t, series)
}

func TestCropTimeSeriesUnknownCrop(t *testing.T) {
	_, ok := CropTimeSeries(sampleRecords(), Selection{Country: "Kenya"}, "Wheat", GroupTotal)
	assert.False(t, ok)
}
