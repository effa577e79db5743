package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// Loader produces a full record table from some source
type Loader interface {
	Load(ctx context.Context) (*Table, error)
	Name() string
}

// FileLoader reads the table from a CSV file on disk
type FileLoader struct {
	Path string
}

// NewFileLoader creates a loader for the CSV at path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

func (l *FileLoader) Name() string {
	return "csv:" + l.Path
}

func (l *FileLoader) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// RecordLister is implemented by the crop record repository
type RecordLister interface {
	ListRecords(ctx context.Context) ([]harvest.Record, error)
}

// RepositoryLoader reads the table from the database
type RepositoryLoader struct {
	repo RecordLister
}

// NewRepositoryLoader creates a loader backed by repo
func NewRepositoryLoader(repo RecordLister) *RepositoryLoader {
	return &RepositoryLoader{repo: repo}
}

func (l *RepositoryLoader) Name() string {
	return "database"
}

func (l *RepositoryLoader) Load(ctx context.Context) (*Table, error) {
	records, err := l.repo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crop records: %w", err)
	}
	return &Table{Columns: Columns, Records: records}, nil
}
