package dashboard

import (
	"math"
	"time"

	"github.com/Robbie-Perry/ShadyTimes/pkg/splines"
	"github.com/Robbie-Perry/ShadyTimes/pkg/sunset"
	"github.com/Robbie-Perry/ShadyTimes/pkg/units"
	"github.com/Robbie-Perry/ShadyTimes/pkg/weir"
)

// Snapshot is the header view: passability right now, always judged against
// the today buffer no matter which day is on screen.
type Snapshot struct {
	At        time.Time       `json:"at"`
	Status    weir.Status     `json:"status"`
	Trend     weir.Trend      `json:"trend"`
	Countdown *weir.Countdown `json:"countdown"`
	Tide      string          `json:"tide,omitempty"`
	Unit      units.Unit      `json:"unit"`
	LoadError string          `json:"load_error,omitempty"`
}

// Snapshot recomputes the header from the already-loaded series. It never
// fetches.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	points := c.today.Points
	st := weir.CurrentStatus(points, now)

	snap := Snapshot{
		At:        now,
		Status:    st,
		Trend:     weir.TrendAt(points, now),
		Countdown: weir.NextCountdown(weir.FindAccessWindows(points), now),
		Unit:      c.unit,
	}
	if st.Tide != nil {
		snap.Tide = units.Format(*st.Tide, c.unit)
	}
	if c.loadErr != nil {
		snap.LoadError = c.loadErr.Error()
	}
	return snap
}

// WindowView pairs an access window with its display annotations.
type WindowView struct {
	weir.AccessWindow
	Label    string `json:"label"`
	Daylight bool   `json:"daylight"`
}

// DayView is everything the day screen needs for the viewed date.
type DayView struct {
	Date    time.Time        `json:"date"`
	Points  []weir.TidePoint `json:"points"`
	Extrema weir.HighLow     `json:"extrema"`
	Windows []WindowView     `json:"windows"`
	Bands   []weir.Band      `json:"bands"`
	Curve   splines.Spline   `json:"curve,omitempty"`
	Unit    units.Unit       `json:"unit"`
}

// DayView renders the viewed day from the loaded series.
func (c *Controller) DayView() DayView {
	c.mu.RLock()
	series := c.viewed
	unit := c.unit
	c.mu.RUnlock()

	windows := weir.FindAccessWindows(series.Points)
	views := make([]WindowView, 0, len(windows))
	var events sunset.SunEvents
	if len(windows) > 0 {
		events = sunset.GetSunEvents(series.Date, 24*time.Hour, c.place)
	}
	for _, w := range windows {
		views = append(views, WindowView{
			AccessWindow: w,
			Label:        w.String(),
			Daylight:     sunset.Daylight(events, w.Start),
		})
	}

	bands := make([]weir.Band, len(series.Points))
	for i, p := range series.Points {
		bands[i] = weir.BandOf(p.Predicted)
	}

	return DayView{
		Date:    series.Date,
		Points:  series.Points,
		Extrema: weir.FindHighLow(series.Points),
		Windows: views,
		Bands:   bands,
		Curve:   forecastSpline(series.Points),
		Unit:    unit,
	}
}

// LiveFrame is one tick of the live feed: the header snapshot plus a
// spline-smoothed height for the current instant.
type LiveFrame struct {
	Snapshot
	Smoothed *float64 `json:"smoothed,omitempty"`
}

// LiveFrame builds the payload the live websocket sends every second.
func (c *Controller) LiveFrame() LiveFrame {
	frame := LiveFrame{Snapshot: c.Snapshot()}

	c.mu.RLock()
	points := c.today.Points
	c.mu.RUnlock()

	if v := forecastSpline(points).Eval(frame.At); !math.IsNaN(v) {
		frame.Smoothed = &v
	}
	return frame
}

func forecastSpline(points []weir.TidePoint) splines.Spline {
	knots := make([]splines.Point, len(points))
	for i, p := range points {
		knots[i] = splines.Point{Time: p.Time, Height: p.Predicted}
	}
	return splines.CurvesBetween(knots)
}
