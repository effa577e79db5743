package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

const sampleCSV = "\ufefffnid,Country,Admin_1,Admin_2,Product,Season_Name,Crop_Production_System,Planting_Year,Planting_Month,Harvest_Year,Harvest_Month,Area,Production,Yield\n" +
	"A1,Kenya, Rift Valley ,Nakuru,Maize,Long rains,All (PS),2018,Mar,2018,Aug,50,100,2\n" +
	"A2,Kenya,Rift Valley,Nakuru,Maize,Long rains,All (PS),2020.0,Mar,2020,Aug,100,200,2\n" +
	"A3,Kenya,Nyanza,,Beans,,,,,,,,n/a,\n"

func TestParseCSV(t *testing.T) {
	table, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "fnid", table.Columns[0])
	assert.Contains(t, table.Columns, "Admin_1")
	require.Len(t, table.Records, 3)

	first := table.Records[0]
	assert.Equal(t, "Rift Valley", first.Admin1)
	assert.Equal(t, "Nakuru", first.Admin2)
	assert.Equal(t, "All (PS)", first.CropProductionSystem)
	require.NotNil(t, first.PlantingYear)
	assert.Equal(t, 2018, *first.PlantingYear)
	assert.Equal(t, 100.0, first.Production)
	assert.Equal(t, 50.0, first.Area)

	second := table.Records[1]
	require.NotNil(t, second.PlantingYear)
	assert.Equal(t, 2020, *second.PlantingYear)

	third := table.Records[2]
	assert.Equal(t, "", third.Admin2)
	assert.Nil(t, third.PlantingYear)
	assert.Nil(t, third.HarvestYear)
	assert.Equal(t, 0.0, third.Production)
	assert.Equal(t, 0.0, third.Area)

	summary, ok := harvest.Summarize(table.Records, harvest.Selection{Country: "Kenya", Admin1: "Rift Valley"})
	require.True(t, ok)
	assert.Equal(t, []int{2019}, summary.Totals.YearGaps)
}

func TestParseCSVLowercaseHeaders(t *testing.T) {
	data := "country,admin_1,product,production,area,planting_year\nGhana,Ashanti,Yam,10,5,2001\n"
	table, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "Ashanti", table.Records[0].Admin1)
	assert.Equal(t, 2.0, table.Records[0].Production/table.Records[0].Area)
}

func TestParseCSVMissingColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("country,admin_1\nKenya,Nyanza\n"))
	assert.True(t, errors.Is(err, ErrMissingColumn))

	_, err = ParseCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestParseCSVMalformedRow(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("country,product\nKenya,Maize,extra\n"))
	assert.Error(t, err)
}

func TestParseYear(t *testing.T) {
	assert.Nil(t, parseYear(""))
	assert.Nil(t, parseYear("abc"))
	assert.Nil(t, parseYear("2018.5"))
	assert.Equal(t, 2018, *parseYear("2018"))
	assert.Equal(t, 2018, *parseYear("2018.0"))

	// out-of-range years are dropped rather than widening coverage
	assert.Nil(t, parseYear("1e300"))
	assert.Nil(t, parseYear("1e12"))
	assert.Nil(t, parseYear("-5"))
	assert.Nil(t, parseYear("2005000"))
	assert.Nil(t, parseYear("NaN"))
	assert.Nil(t, parseYear("Inf"))
}

func TestParseCSVOutOfRangeYear(t *testing.T) {
	input := "country,product,planting_year,production,area\n" +
		"Kenya,Maize,2000,10,5\n" +
		"Kenya,Maize,2005000,10,5\n" +
		"Kenya,Maize,1e300,10,5\n"
	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Records, 3)
	assert.Nil(t, table.Records[1].PlantingYear)
	assert.Nil(t, table.Records[2].PlantingYear)

	summary, ok := harvest.Summarize(table.Records, harvest.Selection{Country: "Kenya"})
	require.True(t, ok)
	assert.Equal(t, "2000 to 2000", summary.Totals.YearsCovered)
	assert.Empty(t, summary.Totals.YearGaps)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 0.0, parseNumber(""))
	assert.Equal(t, 0.0, parseNumber("NaN"))
	assert.Equal(t, 0.0, parseNumber("--"))
	assert.Equal(t, 12.5, parseNumber("12.5"))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []harvest.Record{
		{Country: "Kenya", Admin1: "Nyanza", Product: "Sorghum", SeasonName: "Long rains", PlantingYear: harvest.Year(2019), Production: 75.5, Area: 30},
		{Country: "Mali", Product: "Millet"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(Columns, ","), lines[0])

	table, err := ParseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, table.Records)
}
