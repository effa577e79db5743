package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

func TestCropRecordConversion(t *testing.T) {
	r := harvest.Record{
		Country:              "Burkina Faso",
		Admin1:               "Centre",
		Admin2:               "Kadiogo",
		Product:              "Sorghum",
		SeasonName:           "Main",
		CropProductionSystem: "Rainfed",
		PlantingMonth:        "Jun",
		HarvestMonth:         "Oct",
		PlantingYear:         harvest.Year(2012),
		HarvestYear:          harvest.Year(2012),
		Production:           1234.5,
		Area:                 987,
	}

	row := CropRecordFromRecord(r)
	assert.Zero(t, row.ID)
	assert.Equal(t, r, row.ToRecord())
	assert.Equal(t, "hvstat_crop_records", row.TableName())

	row.PlantingYear = harvest.Year(2005000)
	row.HarvestYear = harvest.Year(-5)
	back := row.ToRecord()
	assert.Nil(t, back.PlantingYear)
	assert.Nil(t, back.HarvestYear)
}

func TestNewDatasetImport(t *testing.T) {
	records := []harvest.Record{
		{Country: "Kenya", Product: "Maize", PlantingYear: harvest.Year(2001)},
		{Country: "Kenya", Product: "Beans", PlantingYear: harvest.Year(2010)},
		{Country: "Mali", Product: "Maize"},
	}

	imp, err := NewDatasetImport("csv:/data/hvstat.csv", []string{"country", "product"}, records)
	require.NoError(t, err)
	assert.Equal(t, 3, imp.RowCount)
	assert.Equal(t, "csv:/data/hvstat.csv", imp.Source)
	assert.Equal(t, []string{"country", "product"}, []string(imp.Columns))

	stats, err := imp.DecodeStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Countries)
	assert.Equal(t, 2, stats.Crops)
	assert.Equal(t, 1, stats.MissingYears)
	require.NotNil(t, stats.MinYear)
	assert.Equal(t, 2001, *stats.MinYear)
	assert.Equal(t, 2010, *stats.MaxYear)

	require.NoError(t, imp.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, imp.ID)
}
