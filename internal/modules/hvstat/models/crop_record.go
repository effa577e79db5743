package models

import (
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// CropRecord is one persisted row of the HVStat table
type CropRecord struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// Geography
	Country string `gorm:"type:text;not null;index:idx_hvstat_scope,priority:1" json:"country"`
	Admin1  string `gorm:"column:admin_1;type:text;index:idx_hvstat_scope,priority:2" json:"admin_1,omitempty"`
	Admin2  string `gorm:"column:admin_2;type:text;index:idx_hvstat_scope,priority:3" json:"admin_2,omitempty"`

	// Crop & season
	Product              string `gorm:"type:text;not null;index" json:"product"`
	SeasonName           string `gorm:"type:text" json:"season_name,omitempty"`
	CropProductionSystem string `gorm:"type:text" json:"crop_production_system,omitempty"`
	PlantingMonth        string `gorm:"type:text" json:"planting_month,omitempty"`
	HarvestMonth         string `gorm:"type:text" json:"harvest_month,omitempty"`
	PlantingYear         *int   `gorm:"type:integer" json:"planting_year,omitempty"`
	HarvestYear          *int   `gorm:"type:integer" json:"harvest_year,omitempty"`

	// Measures
	Production float64 `gorm:"type:double precision;not null;default:0" json:"production"`
	Area       float64 `gorm:"type:double precision;not null;default:0" json:"area"`
}

// TableName specifies the table name
func (CropRecord) TableName() string {
	return "hvstat_crop_records"
}

// ToRecord converts the row into the aggregation type
func (c CropRecord) ToRecord() harvest.Record {
	return harvest.Record{
		Country:              c.Country,
		Admin1:               c.Admin1,
		Admin2:               c.Admin2,
		Product:              c.Product,
		SeasonName:           c.SeasonName,
		CropProductionSystem: c.CropProductionSystem,
		PlantingMonth:        c.PlantingMonth,
		HarvestMonth:         c.HarvestMonth,
		PlantingYear:         harvest.CleanYear(c.PlantingYear),
		HarvestYear:          harvest.CleanYear(c.HarvestYear),
		Production:           c.Production,
		Area:                 c.Area,
	}
}

// CropRecordFromRecord builds a row ready for insertion
func CropRecordFromRecord(r harvest.Record) CropRecord {
	return CropRecord{
		Country:              r.Country,
		Admin1:               r.Admin1,
		Admin2:               r.Admin2,
		Product:              r.Product,
		SeasonName:           r.SeasonName,
		CropProductionSystem: r.CropProductionSystem,
		PlantingMonth:        r.PlantingMonth,
		HarvestMonth:         r.HarvestMonth,
		PlantingYear:         r.PlantingYear,
		HarvestYear:          r.HarvestYear,
		Production:           r.Production,
		Area:                 r.Area,
	}
}
