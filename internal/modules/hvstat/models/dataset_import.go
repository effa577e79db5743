package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// DatasetImport records one load of a CSV into the database
type DatasetImport struct {
	ID       uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Source   string         `gorm:"type:text;not null" json:"source"`
	RowCount int            `gorm:"type:integer;not null" json:"row_count"`
	Columns  pq.StringArray `gorm:"type:text[]" json:"columns"` // PostgreSQL text array
	Stats    datatypes.JSON `gorm:"type:jsonb" json:"stats"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (DatasetImport) TableName() string {
	return "hvstat_dataset_imports"
}

// BeforeCreate sets UUID before creating
func (d *DatasetImport) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ImportStats is the shape stored in DatasetImport.Stats
type ImportStats struct {
	Countries    int  `json:"countries"`
	Crops        int  `json:"crops"`
	MinYear      *int `json:"min_planting_year,omitempty"`
	MaxYear      *int `json:"max_planting_year,omitempty"`
	MissingYears int  `json:"rows_without_planting_year"`
}

// NewDatasetImport describes records loaded from source
func NewDatasetImport(source string, columns []string, records []harvest.Record) (*DatasetImport, error) {
	stats := ImportStats{Countries: len(harvest.Countries(records))}

	crops := make(map[string]struct{})
	for _, r := range records {
		if r.Product != "" {
			crops[r.Product] = struct{}{}
		}
		if r.PlantingYear == nil {
			stats.MissingYears++
		}
	}
	stats.Crops = len(crops)

	coverage := harvest.CoverageOf(records)
	stats.MinYear = coverage.Min()
	stats.MaxYear = coverage.Max()

	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}

	return &DatasetImport{
		Source:   source,
		RowCount: len(records),
		Columns:  pq.StringArray(columns),
		Stats:    datatypes.JSON(raw),
	}, nil
}

// DecodeStats unpacks the Stats column
func (d *DatasetImport) DecodeStats() (ImportStats, error) {
	var stats ImportStats
	if len(d.Stats) == 0 {
		return stats, nil
	}
	err := json.Unmarshal(d.Stats, &stats)
	return stats, err
}
