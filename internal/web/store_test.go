package web

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrylist/internal/country"
)

const waitFor = 2 * time.Second
const tick = 5 * time.Millisecond

func sampleRecords() []country.Record {
	return []country.Record{
		{Name: "Fiji", Region: "Oceania", Area: 18272},
		{Name: "Brazil", Region: "Americas", Area: 8515767},
		{Name: "Andorra", Region: "Europe", Area: 468},
	}
}

// counterValue returns the counter in family name whose label equals labelValue.
func counterValue(t *testing.T, m *Metrics, name, labelValue string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func waitStatus(t *testing.T, s *Store, want country.LoadStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		status, _ := s.Snapshot()
		return status == want
	}, waitFor, tick)
}

func TestStore_LoadSuccess(t *testing.T) {
	metrics := NewMetrics()
	s := NewStore(func(context.Context) ([]country.Record, error) {
		return sampleRecords(), nil
	}, metrics, zerolog.Nop())

	status, records := s.Snapshot()
	assert.Equal(t, country.StatusPending, status)
	assert.Empty(t, records)

	s.Start(context.Background())
	defer s.Close()
	waitStatus(t, s, country.StatusLoaded)

	_, records = s.Snapshot()
	assert.Equal(t, sampleRecords(), records)
	assert.InDelta(t, 1, counterValue(t, metrics, "countrylist_loads_total", "loaded"), 0)
}

func TestStore_StartOnlyOnce(t *testing.T) {
	var calls atomic.Int32
	s := NewStore(func(context.Context) ([]country.Record, error) {
		calls.Add(1)
		return sampleRecords(), nil
	}, nil, zerolog.Nop())

	s.Start(context.Background())
	s.Start(context.Background())
	defer s.Close()
	waitStatus(t, s, country.StatusLoaded)

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_FailureAndRestart(t *testing.T) {
	var calls atomic.Int32
	s := NewStore(func(context.Context) ([]country.Record, error) {
		if calls.Add(1) == 1 {
			return nil, country.ErrLoadFailure
		}
		return sampleRecords(), nil
	}, nil, zerolog.Nop())

	assert.False(t, s.Restart(), "restart before start")

	s.Start(context.Background())
	defer s.Close()
	waitStatus(t, s, country.StatusFailed)

	_, records := s.Snapshot()
	assert.Empty(t, records)

	require.True(t, s.Restart())
	waitStatus(t, s, country.StatusLoaded)
	assert.Equal(t, int32(2), calls.Load())

	assert.False(t, s.Restart(), "restart is only honored from Failed")
}

func TestStore_ConcurrentRestartsCollapse(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	s := NewStore(func(context.Context) ([]country.Record, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("boom")
		}
		<-release
		return sampleRecords(), nil
	}, nil, zerolog.Nop())

	s.Start(context.Background())
	defer s.Close()
	waitStatus(t, s, country.StatusFailed)

	var wg sync.WaitGroup
	var started atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Restart() {
				started.Add(1)
			}
		}()
	}
	wg.Wait()
	close(release)

	waitStatus(t, s, country.StatusLoaded)
	assert.Equal(t, int32(2), calls.Load())
	assert.GreaterOrEqual(t, started.Load(), int32(1))
}

func TestStore_ResultAfterCloseDiscarded(t *testing.T) {
	metrics := NewMetrics()
	release := make(chan struct{})
	done := make(chan struct{})
	s := NewStore(func(context.Context) ([]country.Record, error) {
		defer close(done)
		<-release
		return sampleRecords(), nil
	}, metrics, zerolog.Nop())

	s.Start(context.Background())
	s.Close()
	close(release)
	<-done

	require.Eventually(t, func() bool {
		return counterValue(t, metrics, "countrylist_loads_total", "discarded") == 1
	}, waitFor, tick)

	status, records := s.Snapshot()
	assert.Equal(t, country.StatusPending, status)
	assert.Empty(t, records)
}

func TestStore_CloseCancelsLoad(t *testing.T) {
	cancelled := make(chan struct{})
	s := NewStore(func(ctx context.Context) ([]country.Record, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	}, nil, zerolog.Nop())

	s.Start(context.Background())
	s.Close()

	select {
	case <-cancelled:
	case <-time.After(waitFor):
		t.Fatal("load was not cancelled")
	}
}
