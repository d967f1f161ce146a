// Package units converts tide heights between the metric values the engine
// computes with and the strings readers see. Heights are always stored in
// meters; feet exist only at the display edge.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FeetPerMeter converts meters to US survey-adjacent display feet.
const FeetPerMeter = 3.28084

// Unit is a display preference for tide heights.
type Unit string

const (
	Meters Unit = "meters"
	Feet   Unit = "feet"
)

// Valid reports whether u is one of the units the dashboard can render.
func (u Unit) Valid() bool {
	return u == Meters || u == Feet
}

// ToFeet converts a height in meters to feet.
func ToFeet(m float64) float64 {
	return m * FeetPerMeter
}

// Format renders a height in meters for display. Meters render with two
// decimals and a unit suffix. Feet render as whole feet plus inches, where
// the feet are floored and the leftover inches rounded independently, so a
// height just under a foot boundary can legitimately read "3ft 12in".
func Format(m float64, u Unit) string {
	if u == Feet {
		ft := ToFeet(m)
		whole := math.Floor(ft)
		inches := math.Round((ft - whole) * 12)
		return fmt.Sprintf("%dft %din", int(whole), int(inches))
	}
	return fmt.Sprintf("%.2fm", m)
}

// Parse reads a height in the active unit back into meters. Meter strings
// may carry an "m" suffix; feet strings may be decimal ("3.58") or the
// formatted pair ("3ft 7in"). Parse inverts Format up to the rounding each
// rendering performs.
func Parse(s string, u Unit) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty height")
	}
	if u == Feet {
		return parseFeet(s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "m")), 64)
	if err != nil {
		return 0, fmt.Errorf("bad height %q: %v", s, err)
	}
	return v, nil
}

func parseFeet(s string) (float64, error) {
	ft := 0.0
	rest := s
	if i := strings.Index(s, "ft"); i >= 0 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			return 0, fmt.Errorf("bad feet in %q: %v", s, err)
		}
		ft = v
		rest = strings.TrimSpace(s[i+len("ft"):])
		if rest == "" {
			return ft / FeetPerMeter, nil
		}
	}
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "in"))
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, fmt.Errorf("bad height %q: %v", s, err)
	}
	if rest == s {
		// No "ft" marker anywhere, so the whole string was decimal feet.
		return v / FeetPerMeter, nil
	}
	return (ft + v/12) / FeetPerMeter, nil
}
