package harvest

import (
	"errors"
	"fmt"
)

// NotAvailable is rendered for empty value lists and unnamed seasons
const NotAvailable = "N/A"

// ErrInvalidSelection is returned when a selection is structurally incomplete
var ErrInvalidSelection = errors.New("invalid selection")

// Record is one cleaned row of the HVStat table.
// Empty strings mean the column was absent; nil years mean no year.
type Record struct {
	Country              string `json:"country"`
	Admin1               string `json:"admin_1,omitempty"`
	Admin2               string `json:"admin_2,omitempty"`
	Product              string `json:"product"`
	SeasonName           string `json:"season_name,omitempty"`
	CropProductionSystem string `json:"crop_production_system,omitempty"`
	PlantingMonth        string `json:"planting_month,omitempty"`
	HarvestMonth         string `json:"harvest_month,omitempty"`
	PlantingYear         *int   `json:"planting_year,omitempty"`
	HarvestYear          *int   `json:"harvest_year,omitempty"`

	Production float64 `json:"production"` // tonnes
	Area       float64 `json:"area"`       // hectares
}

// Level is the depth of a geographic selection
type Level int

const (
	LevelCountry Level = iota
	LevelAdmin1
	LevelAdmin2
)

func (l Level) String() string {
	switch l {
	case LevelCountry:
		return "country"
	case LevelAdmin1:
		return "admin_1"
	case LevelAdmin2:
		return "admin_2"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Selection narrows the records taking part in an aggregation
type Selection struct {
	Country string `json:"country"`
	Admin1  string `json:"admin_1,omitempty"`
	Admin2  string `json:"admin_2,omitempty"`
}

// Validate checks that the selection names a country and that Admin2 is
// only given together with Admin1.
func (s Selection) Validate() error {
	if s.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidSelection)
	}
	if s.Admin2 != "" && s.Admin1 == "" {
		return fmt.Errorf("%w: admin_1 is required when admin_2 is given", ErrInvalidSelection)
	}
	return nil
}

// Level reports how deep the selection reaches
func (s Selection) Level() Level {
	switch {
	case s.Admin2 != "":
		return LevelAdmin2
	case s.Admin1 != "":
		return LevelAdmin1
	default:
		return LevelCountry
	}
}

// Matches reports whether r falls inside the selection.
// Both admin fields must match when given; there is no fallback.
func (s Selection) Matches(r Record) bool {
	if r.Country != s.Country {
		return false
	}
	if s.Admin1 != "" && r.Admin1 != s.Admin1 {
		return false
	}
	if s.Admin2 != "" && r.Admin2 != s.Admin2 {
		return false
	}
	return true
}

// Year returns a pointer to y, handy for building records
func Year(y int) *int {
	return &y
}

// Plausible calendar years; anything outside is treated as absent
const (
	MinYear = 1000
	MaxYear = 9999
)

// ValidYear reports whether y lies within [MinYear, MaxYear]
func ValidYear(y int) bool {
	return y >= MinYear && y <= MaxYear
}

// CleanYear returns y when it is a valid year, nil otherwise
func CleanYear(y *int) *int {
	if y == nil || !ValidYear(*y) {
		return nil
	}
	return y
}
