package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler reloads a Store on a cron schedule
type Scheduler struct {
	store   *Store
	timeout time.Duration

	cron    *cron.Cron
	entry   cron.EntryID
	entryMu sync.Mutex
}

// NewScheduler creates a scheduler for store. Each reload gets timeout.
func NewScheduler(store *Store, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Scheduler{
		store:   store,
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Schedule registers the reload job, replacing a previous one.
// spec is a standard 5-field cron expression or a descriptor like "@hourly".
func (s *Scheduler) Schedule(spec string) error {
	s.entryMu.Lock()
	defer s.entryMu.Unlock()

	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}

	id, err := s.cron.AddFunc(spec, s.reload)
	if err != nil {
		return fmt.Errorf("failed to add reload job: %w", err)
	}
	s.entry = id
	log.Info().Str("schedule", spec).Msg("⏰ Dataset reload scheduled")
	return nil
}

// Next returns the next planned reload, or the zero time if none
func (s *Scheduler) Next() time.Time {
	s.entryMu.Lock()
	defer s.entryMu.Unlock()

	if s.entry == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entry).Next
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running reload to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("⏰ Dataset reload scheduler stopped")
}

func (s *Scheduler) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	// Store.Reload already logs failures and keeps the old snapshot
	_, _ = s.store.Reload(ctx)
}
