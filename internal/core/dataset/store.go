package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// ErrNotLoaded is returned before the first successful load
var ErrNotLoaded = errors.New("dataset not loaded")

// Snapshot is an immutable, versioned copy of the record table.
// Callers must not modify Records.
type Snapshot struct {
	Version  uuid.UUID
	Source   string
	LoadedAt time.Time
	Columns  []string
	Records  []harvest.Record
}

// Store holds the current snapshot. Reloads swap it atomically; readers
// keep whatever snapshot they already took.
type Store struct {
	loader Loader

	mu      sync.RWMutex
	current *Snapshot
	lastErr error

	reloadMu sync.Mutex
}

// NewStore creates an empty store backed by loader
func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Current returns the latest snapshot
func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		if s.lastErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotLoaded, s.lastErr)
		}
		return nil, ErrNotLoaded
	}
	return s.current, nil
}

// Reload fetches a fresh table from the loader. On failure the previous
// snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	started := time.Now()
	table, err := s.loader.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		log.Error().Err(err).Str("source", s.loader.Name()).Msg("❌ Dataset reload failed")
		return nil, fmt.Errorf("reload from %s: %w", s.loader.Name(), err)
	}

	snap := &Snapshot{
		Version:  uuid.New(),
		Source:   s.loader.Name(),
		LoadedAt: time.Now(),
		Columns:  table.Columns,
		Records:  table.Records,
	}

	s.mu.Lock()
	s.current = snap
	s.lastErr = nil
	s.mu.Unlock()

	log.Info().
		Str("source", snap.Source).
		Str("version", snap.Version.String()).
		Int("rows", len(snap.Records)).
		Dur("took", time.Since(started)).
		Msg("✅ Dataset loaded")
	return snap, nil
}
