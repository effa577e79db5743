package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

var (
	// ErrNoData is returned when nothing matches a selection
	ErrNoData = errors.New("no data for selection")
	// ErrUnknownUnit is returned for a country or admin-1 unit absent from the dataset
	ErrUnknownUnit = errors.New("unknown administrative unit")
)

// Snapshotter is the read side of dataset.Store
type Snapshotter interface {
	Current() (*dataset.Snapshot, error)
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// StatsService answers catalog and aggregation queries against the
// current dataset snapshot
type StatsService struct {
	store Snapshotter
}

func NewStatsService(store Snapshotter) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) records() ([]harvest.Record, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}

// Snapshot returns the snapshot currently served
func (s *StatsService) Snapshot() (*dataset.Snapshot, error) {
	return s.store.Current()
}

// Reload refreshes the dataset from its configured source
func (s *StatsService) Reload(ctx context.Context) (*dataset.Snapshot, error) {
	return s.store.Reload(ctx)
}

// Countries lists every country in the dataset
func (s *StatsService) Countries() ([]string, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return harvest.Countries(records), nil
}

// Admin1Units lists the admin-1 units of country
func (s *StatsService) Admin1Units(country string) ([]string, error) {
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", harvest.ErrInvalidSelection)
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	if !harvest.HasCountry(records, country) {
		return nil, fmt.Errorf("%w: country %q", ErrUnknownUnit, country)
	}
	return harvest.Admin1Units(records, country), nil
}

// Admin2Units lists the admin-2 units of an admin-1 unit
func (s *StatsService) Admin2Units(country, admin1 string) ([]string, error) {
	if country == "" || admin1 == "" {
		return nil, fmt.Errorf("%w: country and admin_1 are required", harvest.ErrInvalidSelection)
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	if !harvest.HasAdmin1(records, country, admin1) {
		return nil, fmt.Errorf("%w: admin_1 %q in %q", ErrUnknownUnit, admin1, country)
	}
	return harvest.Admin2Units(records, country, admin1), nil
}

// Crops lists the crops grown inside sel
func (s *StatsService) Crops(sel harvest.Selection) ([]string, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return harvest.Crops(records, sel), nil
}

// Years lists the planting years recorded inside sel, newest first
func (s *StatsService) Years(sel harvest.Selection) ([]int, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return harvest.Years(records, sel), nil
}

// Summary aggregates sel
func (s *StatsService) Summary(sel harvest.Selection) (*harvest.Summary, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	summary, ok := harvest.Summarize(records, sel)
	if !ok {
		return nil, ErrNoData
	}
	return summary, nil
}

// TimeSeries builds yearly series of crop inside sel
func (s *StatsService) TimeSeries(sel harvest.Selection, crop string, grouping harvest.Grouping) ([]harvest.Series, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if crop == "" {
		return nil, fmt.Errorf("%w: crop_name is required", harvest.ErrInvalidSelection)
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	series, ok := harvest.CropTimeSeries(records, sel, crop, grouping)
	if !ok {
		return nil, ErrNoData
	}
	return series, nil
}

// UnitValues returns choropleth values for the children of sel
func (s *StatsService) UnitValues(sel harvest.Selection, crop string, year *int) ([]harvest.UnitValue, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return harvest.AdminUnitValues(records, sel, crop, year), nil
}

// Records returns the raw rows matching f
func (s *StatsService) Records(f harvest.RecordFilter) ([]harvest.Record, error) {
	records, err := s.records()
	if err != nil {
		return nil, err
	}
	return harvest.Filter(records, f), nil
}
