package weir

import (
	"testing"
	"time"
)

// grid builds a quarter-hour series of forecast-only points starting at
// start, one per height.
func grid(start time.Time, heights ...float64) []TidePoint {
	pts := make([]TidePoint, len(heights))
	for i, h := range heights {
		t := start.Add(time.Duration(i) * gridStep)
		pts[i] = TidePoint{Time: t, Label: t.Format(labelFormat), Predicted: h}
	}
	return pts
}

func ptr(f float64) *float64 {
	return &f
}

func TestEffective(t *testing.T) {
	p := TidePoint{Predicted: 1.2}
	if got := p.Effective(); got != 1.2 {
		t.Errorf("got %v, want the forecast 1.2", got)
	}
	p.Observed = ptr(0.9)
	if got := p.Effective(); got != 0.9 {
		t.Errorf("got %v, want the observation 0.9", got)
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		height float64
		want   Band
	}{
		{0.2, BandSafe},
		{1.05, BandSafe},
		{1.06, BandPassable},
		{1.1, BandPassable},
		{1.11, BandMarginal},
		{1.3, BandMarginal},
		{1.31, BandSubmerged},
		{2.4, BandSubmerged},
	}
	for _, tc := range tests {
		if got := BandOf(tc.height); got != tc.want {
			t.Errorf("BandOf(%v) = %q, want %q", tc.height, got, tc.want)
		}
	}
}
