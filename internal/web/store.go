package web

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/countrylist/internal/country"
)

// LoadFunc fetches the country records. country.Loader.Load satisfies it.
type LoadFunc func(ctx context.Context) ([]country.Record, error)

// Store holds the load status and records shared by all requests.
type Store struct {
	load    LoadFunc
	metrics *Metrics
	logger  zerolog.Logger

	mu         sync.RWMutex
	status     country.LoadStatus
	records    []country.Record
	generation int
	started    bool
	closed     bool
	ctx        context.Context
	cancel     context.CancelFunc

	group singleflight.Group
}

// NewStore returns a pending store that loads with load once started.
// metrics may be nil.
func NewStore(load LoadFunc, metrics *Metrics, logger zerolog.Logger) *Store {
	return &Store{
		load:    load,
		metrics: metrics,
		logger:  logger.With().Str("component", "store").Logger(),
		status:  country.StatusPending,
	}
}

// Start launches the load in the background. Calls after the first are no-ops.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	gen := s.generation
	s.mu.Unlock()

	go s.run(gen)
}

// Restart begins a new load, but only from the Failed state. Concurrent
// callers share one attempt. It reports whether a load was started.
func (s *Store) Restart() bool {
	v, _, _ := s.group.Do("restart", func() (any, error) {
		s.mu.Lock()
		if !s.started || s.closed || s.status != country.StatusFailed {
			s.mu.Unlock()
			return false, nil
		}
		s.status = country.StatusPending
		s.generation++
		gen := s.generation
		s.mu.Unlock()

		s.logger.Info().Int("generation", gen).Msg("restarting country load")
		go s.run(gen)
		return true, nil
	})
	restarted, _ := v.(bool)
	return restarted
}

// Snapshot returns the current status and records. The records slice is
// shared and must not be modified.
func (s *Store) Snapshot() (country.LoadStatus, []country.Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.records
}

// Close cancels an in-flight load. Results arriving afterwards are discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Store) run(gen int) {
	start := time.Now()
	records, err := s.load(s.ctx)
	s.finish(gen, records, err, time.Since(start))
}

func (s *Store) finish(gen int, records []country.Record, err error, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation || s.status != country.StatusPending {
		s.logger.Debug().Int("generation", gen).Msg("discarding load result")
		s.metrics.observeLoad("discarded", elapsed)
		return
	}

	s.status = country.Resolve(err)
	if err != nil {
		s.logger.Error().Err(err).Dur("elapsed", elapsed).Msg("country load failed")
		s.metrics.observeLoad(s.status.String(), elapsed)
		return
	}

	s.records = records
	s.logger.Info().Int("records", len(records)).Dur("elapsed", elapsed).Msg("countries loaded")
	s.metrics.observeLoad(s.status.String(), elapsed)
}
