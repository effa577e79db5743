package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/models"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/repositories"
)

// ImportService copies a dataset from any loader into the database
type ImportService struct {
	repo repositories.CropRecordRepo
}

func NewImportService(repo repositories.CropRecordRepo) *ImportService {
	return &ImportService{repo: repo}
}

// Import loads the table and replaces the stored records with it
func (s *ImportService) Import(ctx context.Context, loader dataset.Loader) (*models.DatasetImport, error) {
	table, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", loader.Name(), err)
	}

	imp, err := models.NewDatasetImport(loader.Name(), table.Columns, table.Records)
	if err != nil {
		return nil, fmt.Errorf("build import stats: %w", err)
	}

	if err := s.repo.ReplaceAll(ctx, table.Records, imp); err != nil {
		return nil, err
	}

	log.Info().
		Str("source", imp.Source).
		Int("rows", imp.RowCount).
		Str("import_id", imp.ID.String()).
		Msg("📥 Dataset imported")
	return imp, nil
}

// Latest returns the most recent import, or nil when none exists
func (s *ImportService) Latest(ctx context.Context) (*models.DatasetImport, error) {
	imp, err := s.repo.LatestImport(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return imp, err
}

// StoredRows counts the crop records currently in the database
func (s *ImportService) StoredRows(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
