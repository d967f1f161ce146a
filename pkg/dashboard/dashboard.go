// Package dashboard owns the view state the HTTP layer renders: which day
// is on screen, the active display unit, and the loaded tide series. The
// engine stays pure; the controller decides when to load and recompute.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Robbie-Perry/ShadyTimes/pkg/source"
	"github.com/Robbie-Perry/ShadyTimes/pkg/sunset"
	"github.com/Robbie-Perry/ShadyTimes/pkg/timetricks"
	"github.com/Robbie-Perry/ShadyTimes/pkg/units"
)

// Loader is the slice of the data source the controller consumes.
type Loader interface {
	Day(ctx context.Context, date time.Time) (source.DaySeries, error)
	ForceRefresh()
}

// Controller serializes all view state mutation. Loads are sequenced: every
// Load takes a token, and only the newest token may commit, so a slow fetch
// finishing after a later navigation is dropped on the floor.
type Controller struct {
	loader Loader
	place  sunset.Place
	log    *zap.SugaredLogger

	mu         sync.RWMutex
	seq        uint64
	unit       units.Unit
	today      source.DaySeries
	viewed     source.DaySeries
	viewedDate time.Time
	loadErr    error

	// now is stubbed by tests.
	now func() time.Time
}

// New returns a Controller with nothing loaded and meters active.
func New(loader Loader, place sunset.Place, log *zap.SugaredLogger) *Controller {
	return &Controller{
		loader: loader,
		place:  place,
		log:    log,
		unit:   units.Meters,
		now:    time.Now,
	}
}

// Load makes date the viewed day, refreshing the today buffer alongside it.
// A failed load keeps the previous buffers and records the error for the
// next snapshot; a load superseded by a newer one reports success and
// changes nothing.
func (c *Controller) Load(ctx context.Context, date time.Time) error {
	token := c.begin(date)
	now := c.now()

	if timetricks.SameDay(date, now) {
		series, err := c.loader.Day(ctx, date)
		return c.commit(token, series, series, err)
	}

	type loaded struct {
		series source.DaySeries
		err    error
	}
	todayCh := make(chan loaded, 1)
	go func() {
		series, err := c.loader.Day(ctx, now)
		todayCh <- loaded{series, err}
	}()

	viewed, viewedErr := c.loader.Day(ctx, date)
	today := <-todayCh

	err := viewedErr
	if err == nil {
		err = today.err
	}
	return c.commit(token, today.series, viewed, err)
}

// begin claims the next load token and repoints the viewed date, which is
// what implicitly abandons any load still in flight.
func (c *Controller) begin(date time.Time) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.viewedDate = timetricks.StartOfDay(date)
	return c.seq
}

// commit installs a finished load unless a newer one superseded it.
func (c *Controller) commit(token uint64, today, viewed source.DaySeries, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		c.log.Debugw("dropping superseded load", "token", token, "seq", c.seq)
		return nil
	}
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.today = today
	c.viewed = viewed
	return nil
}

// Refresh clears the source caches and reloads both buffers for the day on
// screen.
func (c *Controller) Refresh(ctx context.Context) error {
	c.loader.ForceRefresh()
	return c.Load(ctx, c.currentViewedDate())
}

// Rollover reloads at the day boundary so the today buffer tracks the new
// calendar day while the viewed day stays put.
func (c *Controller) Rollover(ctx context.Context) {
	if err := c.Load(ctx, c.currentViewedDate()); err != nil {
		c.log.Errorw("rollover load failed", "error", err)
	}
}

func (c *Controller) currentViewedDate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.viewedDate.IsZero() {
		return c.now()
	}
	return c.viewedDate
}

// SetUnit switches the display unit.
func (c *Controller) SetUnit(u units.Unit) error {
	if !u.Valid() {
		return fmt.Errorf("unknown unit %q", u)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unit = u
	return nil
}

// Unit returns the active display unit.
func (c *Controller) Unit() units.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unit
}
