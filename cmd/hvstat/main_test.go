package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

const sampleCSV = `country,admin_1,admin_2,product,season_name,crop_production_system,planting_month,harvest_month,planting_year,harvest_year,area,production
Kenya,Rift Valley,Nakuru,Maize,Long rains,Rainfed,March,August,2018,2018,100,250
Kenya,Rift Valley,Nakuru,Maize,Short rains,Rainfed,October,February,2019,2020,50,100
Kenya,Nyanza,Kisumu,Sorghum,Long rains,Rainfed,March,July,2020,2020,20,30
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hvstat.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestSummarizeCommand(t *testing.T) {
	path := writeSample(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"summarize", "--file", path, "--country", "Kenya", "--admin1", "Rift Valley"})
	t.Cleanup(func() { country, admin1, admin2, dataFile = "", "", "", "" })

	require.NoError(t, rootCmd.Execute())

	var summary harvest.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, harvest.LevelAdmin1, summary.Level)
	assert.Equal(t, 350.0, summary.Totals.TotalProduction)
	require.Len(t, summary.Crops, 1)
	assert.Len(t, summary.Crops[0].Seasons, 2)
}

func TestSummarizeFileErrors(t *testing.T) {
	path := writeSample(t)

	_, err := summarizeFile(t.Context(), path, harvest.Selection{Country: "Mali"})
	assert.ErrorContains(t, err, "no records for Mali")

	_, err = summarizeFile(t.Context(), path, harvest.Selection{Country: "Kenya", Admin2: "Nakuru"})
	assert.ErrorIs(t, err, harvest.ErrInvalidSelection)
}

func TestExportCommand(t *testing.T) {
	path := writeSample(t)
	target := filepath.Join(t.TempDir(), "kenya.csv")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"export", "--file", path, "--country", "Kenya", "--format", "csv", "--out", target})
	t.Cleanup(func() { country, dataFile, exportOut, exportFormat = "", "", "", "excel" })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Seasons")
}
