package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/models"
)

const batchSize = 1000

type CropRecordRepo interface {
	ListRecords(ctx context.Context) ([]harvest.Record, error)
	ReplaceAll(ctx context.Context, records []harvest.Record, imp *models.DatasetImport) error
	Count(ctx context.Context) (int64, error)
	LatestImport(ctx context.Context) (*models.DatasetImport, error)
}

type cropRecordRepo struct {
	db *gorm.DB
}

func NewCropRecordRepo(db *gorm.DB) CropRecordRepo {
	return &cropRecordRepo{db: db}
}

// ListRecords streams the whole table in batches
func (r *cropRecordRepo) ListRecords(ctx context.Context) ([]harvest.Record, error) {
	var records []harvest.Record
	var batch []models.CropRecord

	result := r.db.WithContext(ctx).
		Model(&models.CropRecord{}).
		Order("id").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			for _, row := range batch {
				records = append(records, row.ToRecord())
			}
			return nil
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list crop records: %w", result.Error)
	}
	return records, nil
}

// ReplaceAll swaps the table contents for records and logs the import,
// all in one transaction.
func (r *cropRecordRepo) ReplaceAll(ctx context.Context, records []harvest.Record, imp *models.DatasetImport) error {
	rows := make([]models.CropRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.CropRecordFromRecord(rec))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CropRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear crop records: %w", err)
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert crop records: %w", err)
			}
		}
		if imp != nil {
			if err := tx.Create(imp).Error; err != nil {
				return fmt.Errorf("failed to record import: %w", err)
			}
		}
		return nil
	})
}

func (r *cropRecordRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CropRecord{}).Count(&count).Error
	return count, err
}

func (r *cropRecordRepo) LatestImport(ctx context.Context) (*models.DatasetImport, error) {
	var imp models.DatasetImport
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&imp).Error
	if err != nil {
		return nil, err
	}
	return &imp, nil
}
