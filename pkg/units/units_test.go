package units

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		unit   Unit
		want   string
	}{{
		name:   "meters two decimals",
		meters: 1.1,
		unit:   Meters,
		want:   "1.10m",
	}, {
		name:   "meters zero",
		meters: 0,
		unit:   Meters,
		want:   "0.00m",
	}, {
		name:   "meters below datum",
		meters: -0.12,
		unit:   Meters,
		want:   "-0.12m",
	}, {
		name:   "feet with inches",
		meters: 1.1,
		unit:   Feet,
		want:   "3ft 7in",
	}, {
		name:   "feet zero",
		meters: 0,
		unit:   Feet,
		want:   "0ft 0in",
	}, {
		// The inch remainder rounds on its own, so a height just shy of
		// four feet reads as twelve inches rather than rolling over.
		name:   "feet rounding up to twelve inches",
		meters: 1.207,
		unit:   Feet,
		want:   "3ft 12in",
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.meters, tc.unit); got != tc.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tc.meters, tc.unit, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		unit    Unit
		want    float64
		wantErr bool
	}{{
		name: "meters with suffix",
		in:   "1.10m",
		unit: Meters,
		want: 1.10,
	}, {
		name: "meters bare",
		in:   "1.1",
		unit: Meters,
		want: 1.1,
	}, {
		name: "feet and inches",
		in:   "3ft 7in",
		unit: Feet,
		want: (3 + 7.0/12) / FeetPerMeter,
	}, {
		name: "feet only",
		in:   "3ft",
		unit: Feet,
		want: 3 / FeetPerMeter,
	}, {
		name: "decimal feet",
		in:   "3.58",
		unit: Feet,
		want: 3.58 / FeetPerMeter,
	}, {
		name: "inches only",
		in:   "7in",
		unit: Feet,
		want: (7.0 / 12) / FeetPerMeter,
	}, {
		name:    "garbage",
		in:      "wet",
		unit:    Meters,
		wantErr: true,
	}, {
		name:    "garbage feet",
		in:      "xft yin",
		unit:    Feet,
		wantErr: true,
	}, {
		name:    "empty",
		in:      "",
		unit:    Meters,
		wantErr: true,
	}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in, tc.unit)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q, %v) = %v, want error", tc.in, tc.unit, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %v) returned error %v", tc.in, tc.unit, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Parse(%q, %v) = %v, want %v", tc.in, tc.unit, got, tc.want)
			}
		})
	}
}

// Formatting in meters and parsing the result back must agree to within the
// two decimals the rendering keeps.
func TestMetersRoundTrip(t *testing.T) {
	for _, h := range []float64{0, 0.05, 0.74, 1.1, 1.35, 2.01, -0.12} {
		s := Format(h, Meters)
		got, err := Parse(s, Meters)
		if err != nil {
			t.Fatalf("Parse(%q, Meters) returned error %v", s, err)
		}
		if math.Abs(got-h) > 0.005 {
			t.Errorf("round trip of %v via %q came back %v", h, s, got)
		}
	}
}

// The feet rendering floors to whole feet and rounds inches, so a round trip
// can drift by up to half an inch but no more.
func TestFeetRoundTripBounded(t *testing.T) {
	const halfInch = 0.0254 / 2
	for _, h := range []float64{0, 0.3, 0.74, 1.1, 1.207, 1.35, 2.01} {
		s := Format(h, Feet)
		got, err := Parse(s, Feet)
		if err != nil {
			t.Fatalf("Parse(%q, Feet) returned error %v", s, err)
		}
		if math.Abs(got-h) > halfInch+1e-9 {
			t.Errorf("round trip of %v via %q came back %v, off by %v",
				h, s, got, math.Abs(got-h))
		}
	}
}

func TestUnitValid(t *testing.T) {
	if !Meters.Valid() || !Feet.Valid() {
		t.Error("canonical units reported invalid")
	}
	if Unit("furlongs").Valid() {
		t.Error("furlongs reported valid")
	}
}
