package harvest

// Summary is the nested view of one selection
type Summary struct {
	Selection Selection    `json:"selection"`
	Level     Level        `json:"admin_level"`
	Totals    Totals       `json:"totals"`
	Crops     []CropDetail `json:"crops"`
}

// Totals describes the whole scope
type Totals struct {
	RecordCount     int     `json:"record_count"`
	UniqueCropCount int     `json:"unique_crops_count"`
	TotalProduction float64 `json:"total_production"`
	TotalArea       float64 `json:"total_area"`

	YearsCovered string `json:"years_covered"`
	MinYear      *int   `json:"min_planting_year"`
	MaxYear      *int   `json:"max_planting_year"`
	YearGaps     []int  `json:"missing_planting_years"`

	// Only set at country level
	Admin1Count *int `json:"unique_admin_1_units_count,omitempty"`
	// Only set at admin-1 level
	Admin2Count *int `json:"unique_admin_2_units_count,omitempty"`
}

// CropDetail is the breakdown for one product
type CropDetail struct {
	Crop            string  `json:"crop"`
	TotalProduction float64 `json:"total_production"`
	TotalArea       float64 `json:"total_area_harvested"`
	AverageYield    float64 `json:"average_yield"`

	// Only set at country level
	PercentageOfCountryTotal *float64 `json:"percentage_of_country_total,omitempty"`

	Seasons []SeasonDetail `json:"season_specific_breakdown"`
}

// SeasonDetail is the breakdown for one season within a crop
type SeasonDetail struct {
	Season           string  `json:"season_name"`
	Production       float64 `json:"production_absolute"`
	PercentageOfCrop float64 `json:"production_percentage_of_crop"`
	Area             float64 `json:"area_harvested"`
	AverageYield     float64 `json:"yield"`

	ProductionSystems string `json:"production_systems"`
	PlantingMonths    string `json:"planting_months"`
	HarvestMonths     string `json:"harvest_months"`
}

// Crop returns the detail for name, if present
func (s *Summary) Crop(name string) (CropDetail, bool) {
	for _, c := range s.Crops {
		if c.Crop == name {
			return c, true
		}
	}
	return CropDetail{}, false
}
