// Package source loads and caches the per-day tide series the dashboard
// renders. It is the only part of the system that talks to the network.
package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Robbie-Perry/ShadyTimes/pkg/cache"
	"github.com/Robbie-Perry/ShadyTimes/pkg/metrics"
	"github.com/Robbie-Perry/ShadyTimes/pkg/noaa"
	"github.com/Robbie-Perry/ShadyTimes/pkg/timetricks"
	"github.com/Robbie-Perry/ShadyTimes/pkg/weir"
)

const (
	// Predictions are computed from harmonics and do not change within a
	// day; observations trickle in all day long.
	predictionTTL  = 24 * time.Hour
	observationTTL = 15 * time.Minute

	productPredictions  = "predictions"
	productObservations = "water_level"
)

// ErrFetch is the one failure kind a load surfaces. Anything that goes
// wrong upstream wraps it; an empty series is not an error.
var ErrFetch = errors.New("tide data fetch failed")

// API is the tide client surface the source consumes.
type API interface {
	Predictions(ctx context.Context, day time.Time) (noaa.Samples, error)
	WaterLevels(ctx context.Context, day time.Time) (noaa.Samples, error)
}

// DaySeries is one calendar day of merged tide points.
type DaySeries struct {
	Date   time.Time        `json:"date"`
	Points []weir.TidePoint `json:"points"`
}

// Source fetches, merges, and caches day series. It is safe for concurrent
// use.
type Source struct {
	api API
	log *zap.SugaredLogger

	mu           sync.Mutex
	predictions  *cache.Timed[noaa.Samples]
	observations *cache.Timed[noaa.Samples]

	// now is stubbed by tests.
	now func() time.Time
}

// New returns a Source backed by api.
func New(api API, log *zap.SugaredLogger) *Source {
	return &Source{
		api:          api,
		log:          log,
		predictions:  cache.NewTimed[noaa.Samples](predictionTTL),
		observations: cache.NewTimed[noaa.Samples](observationTTL),
		now:          time.Now,
	}
}

// Day returns the merged series for the calendar day of date. The
// prediction and observation fetches run concurrently and both must
// succeed; failures wrap ErrFetch and leave the caches unchanged.
func (s *Source) Day(ctx context.Context, date time.Time) (DaySeries, error) {
	type fetched struct {
		samples noaa.Samples
		err     error
	}

	predCh := make(chan fetched, 1)
	go func() {
		samples, err := s.predictionsFor(ctx, date)
		predCh <- fetched{samples, err}
	}()

	obs, obsErr := s.observationsFor(ctx, date)
	pred := <-predCh

	if pred.err != nil {
		return DaySeries{}, pred.err
	}
	if obsErr != nil {
		return DaySeries{}, obsErr
	}

	return DaySeries{
		Date:   timetricks.StartOfDay(date),
		Points: weir.Merge(pred.samples, obs),
	}, nil
}

// ForceRefresh drops every cached series so the next load hits the source
// again.
func (s *Source) ForceRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions.Clear()
	s.observations.Clear()
	s.log.Info("series caches cleared")
}

func (s *Source) predictionsFor(ctx context.Context, date time.Time) (noaa.Samples, error) {
	key := timetricks.UniqueDay(date)

	s.mu.Lock()
	cached, ok := s.predictions.Get(key)
	s.mu.Unlock()
	metrics.ObserveCacheLookup(productPredictions, ok)
	if ok {
		return cached, nil
	}

	samples, err := s.api.Predictions(ctx, date)
	if err != nil {
		metrics.ObserveFetch(productPredictions, "error")
		s.log.Errorw("prediction fetch failed", "day", key, "error", err)
		return nil, fmt.Errorf("%w: predictions for %s: %v", ErrFetch, key, err)
	}
	metrics.ObserveFetch(productPredictions, "ok")
	s.log.Infow("fetched predictions", "day", key, "samples", len(samples))

	s.mu.Lock()
	s.predictions.Set(key, samples)
	s.mu.Unlock()
	return samples, nil
}

func (s *Source) observationsFor(ctx context.Context, date time.Time) (noaa.Samples, error) {
	// Days after today have no gauge readings yet; skip the round trip.
	if timetricks.StartOfDay(date).After(timetricks.StartOfDay(s.now())) {
		return nil, nil
	}

	key := timetricks.UniqueDay(date)

	s.mu.Lock()
	cached, ok := s.observations.Get(key)
	s.mu.Unlock()
	metrics.ObserveCacheLookup(productObservations, ok)
	if ok {
		return cached, nil
	}

	samples, err := s.api.WaterLevels(ctx, date)
	if err != nil {
		metrics.ObserveFetch(productObservations, "error")
		s.log.Errorw("observation fetch failed", "day", key, "error", err)
		return nil, fmt.Errorf("%w: water levels for %s: %v", ErrFetch, key, err)
	}
	metrics.ObserveFetch(productObservations, "ok")
	s.log.Infow("fetched water levels", "day", key, "samples", len(samples))

	s.mu.Lock()
	s.observations.Set(key, samples)
	s.mu.Unlock()
	return samples, nil
}
