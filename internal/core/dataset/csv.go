package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// ErrMissingColumn is returned when a required header is absent
var ErrMissingColumn = errors.New("missing required column")

// Canonical column names of the HVStat table. Headers are matched
// case-insensitively, so "Admin_1" and "admin_1" both resolve.
const (
	ColCountry              = "country"
	ColAdmin1               = "admin_1"
	ColAdmin2               = "admin_2"
	ColProduct              = "product"
	ColSeasonName           = "season_name"
	ColCropProductionSystem = "crop_production_system"
	ColPlantingMonth        = "planting_month"
	ColHarvestMonth         = "harvest_month"
	ColPlantingYear         = "planting_year"
	ColHarvestYear          = "harvest_year"
	ColProduction           = "production"
	ColArea                 = "area"
)

// Columns is the header layout written by WriteCSV
var Columns = []string{
	ColCountry, ColAdmin1, ColAdmin2, ColProduct, ColSeasonName,
	ColCropProductionSystem, ColPlantingMonth, ColHarvestMonth,
	ColPlantingYear, ColHarvestYear, ColArea, ColProduction,
}

var requiredColumns = []string{ColCountry, ColProduct}

// Table is a parsed CSV file
type Table struct {
	Columns []string // header as found in the file
	Records []harvest.Record
}

// ParseCSV reads an HVStat CSV with a header row and cleans every row:
// strings are trimmed, numbers default to 0, years become integers or
// absent. Unknown columns are ignored.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		columns[i] = name
		key := strings.ToLower(name)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	table := &Table{Columns: columns}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		table.Records = append(table.Records, harvest.Record{
			Country:              field(row, ColCountry),
			Admin1:               field(row, ColAdmin1),
			Admin2:               field(row, ColAdmin2),
			Product:              field(row, ColProduct),
			SeasonName:           field(row, ColSeasonName),
			CropProductionSystem: field(row, ColCropProductionSystem),
			PlantingMonth:        field(row, ColPlantingMonth),
			HarvestMonth:         field(row, ColHarvestMonth),
			PlantingYear:         parseYear(field(row, ColPlantingYear)),
			HarvestYear:          parseYear(field(row, ColHarvestYear)),
			Production:           parseNumber(field(row, ColProduction)),
			Area:                 parseNumber(field(row, ColArea)),
		})
	}

	return table, nil
}

// parseNumber coerces a numeric cell; empty or invalid cells become 0
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseYear accepts "2018" and "2018.0" within the valid year range;
// anything else is absent
func parseYear(s string) *int {
	if s == "" {
		return nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		return harvest.CleanYear(&y)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || v < harvest.MinYear || v > harvest.MaxYear {
		return nil
	}
	y := int(v)
	return &y
}

// WriteCSV writes records using the Columns header layout
func WriteCSV(w io.Writer, records []harvest.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Country, r.Admin1, r.Admin2, r.Product, r.SeasonName,
			r.CropProductionSystem, r.PlantingMonth, r.HarvestMonth,
			formatYear(r.PlantingYear), formatYear(r.HarvestYear),
			strconv.FormatFloat(r.Area, 'f', -1, 64),
			strconv.FormatFloat(r.Production, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
