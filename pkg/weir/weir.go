// Package weir decides whether the weir crossing is passable from tide
// series and finds the windows of the day when it is.
//
// Everything here is a pure function over already-loaded series: no fetching,
// no caching, no clocks other than the instants callers pass in. Heights are
// meters above MLLW throughout.
package weir

import (
	"time"
)

const (
	// AccessThreshold is the tide height at or below which the crossing
	// is passable.
	AccessThreshold = 1.1

	// safeThreshold and marginalThreshold bound the display bands. They
	// take no part in window or status decisions.
	safeThreshold     = 1.05
	marginalThreshold = 1.3
)

const labelFormat = "3:04 PM"

// TidePoint is one quarter-hour grid slot holding the forecast height and,
// when a gauge reading landed in the same slot, the observed height.
type TidePoint struct {
	Time      time.Time `json:"time"`
	Label     string    `json:"label"`
	Predicted float64   `json:"predicted"`
	Observed  *float64  `json:"observed"`
}

// Effective returns the height to judge the crossing by, preferring a real
// observation over the forecast.
func (p TidePoint) Effective() float64 {
	if p.Observed != nil {
		return *p.Observed
	}
	return p.Predicted
}

// Trend is the direction the tide is moving at an instant.
type Trend string

const (
	Rising       Trend = "rising"
	Falling      Trend = "falling"
	TrendUnknown Trend = "unknown"
)

// State is the coarse crossing answer shown in the header.
type State string

const (
	StateOpen    State = "open"
	StateClosed  State = "closed"
	StateUnknown State = "unknown"
)

// Band grades a height for display. The order matches rising water.
type Band string

const (
	BandSafe      Band = "safe"
	BandPassable  Band = "passable"
	BandMarginal  Band = "marginal"
	BandSubmerged Band = "submerged"
)

// BandOf classifies a height into its display band.
func BandOf(height float64) Band {
	switch {
	case height <= safeThreshold:
		return BandSafe
	case height <= AccessThreshold:
		return BandPassable
	case height <= marginalThreshold:
		return BandMarginal
	default:
		return BandSubmerged
	}
}
