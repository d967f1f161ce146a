package weir

import (
	"time"
)

// HighLow holds the day's tide extremes. Nil fields mean an empty series.
type HighLow struct {
	High *TidePoint `json:"high"`
	Low  *TidePoint `json:"low"`
}

// FindHighLow scans for the highest and lowest forecast points. The first
// occurrence wins a tie.
func FindHighLow(points []TidePoint) HighLow {
	var hl HighLow
	for i := range points {
		p := &points[i]
		if hl.High == nil || p.Predicted > hl.High.Predicted {
			hl.High = p
		}
		if hl.Low == nil || p.Predicted < hl.Low.Predicted {
			hl.Low = p
		}
	}
	return hl
}

// TrendAt classifies the tide direction at now from the pair of grid points
// bracketing it. A flat pair counts as falling. Instants before the first
// point or at or past the last are unknown.
func TrendAt(points []TidePoint, now time.Time) Trend {
	for i := 0; i+1 < len(points); i++ {
		if now.Before(points[i].Time) || !now.Before(points[i+1].Time) {
			continue
		}
		if points[i+1].Predicted > points[i].Predicted {
			return Rising
		}
		return Falling
	}
	return TrendUnknown
}

// Status is the passability snapshot for one instant.
type Status struct {
	Accessible bool       `json:"accessible"`
	State      State      `json:"state"`
	Tide       *float64   `json:"tide"`
	Nearest    *TidePoint `json:"nearest"`
}

// CurrentStatus classifies the instant now against the nearest grid point,
// judging by the observed height when the slot has one. An empty series
// yields an unknown state rather than an error.
func CurrentStatus(points []TidePoint, now time.Time) Status {
	if len(points) == 0 {
		return Status{State: StateUnknown}
	}

	nearest := &points[0]
	best := absDuration(points[0].Time.Sub(now))
	for i := 1; i < len(points); i++ {
		if d := absDuration(points[i].Time.Sub(now)); d < best {
			nearest, best = &points[i], d
		}
	}

	tide := nearest.Effective()
	st := Status{Tide: &tide, Nearest: nearest}
	if tide <= AccessThreshold {
		st.Accessible = true
		st.State = StateOpen
	} else {
		st.State = StateClosed
	}
	return st
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
