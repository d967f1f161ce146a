package weir

import (
	"fmt"
	"time"

	"github.com/Robbie-Perry/ShadyTimes/pkg/timetricks"
)

// AccessWindow is a maximal run of consecutive grid points whose forecast
// stays at or below the access threshold. A single qualifying point forms a
// window whose start and end coincide.
type AccessWindow struct {
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Points []TidePoint `json:"points"`
}

// FindAccessWindows partitions the series into its passable stretches, in
// chronological order. A window still open when the series ends is emitted
// as it stands.
func FindAccessWindows(points []TidePoint) []AccessWindow {
	var windows []AccessWindow
	var open *AccessWindow
	for _, p := range points {
		if p.Predicted > AccessThreshold {
			if open != nil {
				windows = append(windows, *open)
				open = nil
			}
			continue
		}
		if open == nil {
			open = &AccessWindow{Start: p.Time}
		}
		open.End = p.Time
		open.Points = append(open.Points, p)
	}
	if open != nil {
		windows = append(windows, *open)
	}
	return windows
}

// Contains reports whether t falls inside the window, boundaries included.
func (w AccessWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration is the span from the first to the last qualifying point. A
// single-point window has zero duration.
func (w AccessWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// String renders like "Today 3:15 PM until 5:45 PM".
func (w AccessWindow) String() string {
	day := timetricks.Day(w.Start)
	if w.Start.Equal(w.End) {
		return fmt.Sprintf("%s at %s", day, w.Start.Format(labelFormat))
	}
	return fmt.Sprintf("%s %s until %s",
		day, w.Start.Format(labelFormat), w.End.Format(labelFormat))
}
