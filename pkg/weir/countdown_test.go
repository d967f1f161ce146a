package weir

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func dayWindows(t *testing.T) (time.Time, []AccessWindow) {
	t.Helper()
	day := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	// Passable 8:15 through 8:45, then again 13:30 through 14:00.
	points := append(
		grid(day, 1.3, 1.05, 0.9, 1.0, 1.2),
		grid(day.Add(5*time.Hour+30*time.Minute), 1.0, 0.9, 1.0, 1.2)...)
	windows := FindAccessWindows(points)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	return day, windows
}

func TestNextCountdown(t *testing.T) {
	day, windows := dayWindows(t)

	t.Run("inside a window counts down to its close", func(t *testing.T) {
		now := day.Add(20 * time.Minute)
		cd := NextCountdown(windows, now)
		if cd == nil {
			t.Fatal("got nil countdown inside a window")
		}
		if cd.Kind != WindowClosing {
			t.Errorf("got kind %q, want closing", cd.Kind)
		}
		if want := 25 * time.Minute; cd.Remaining != want {
			t.Errorf("got remaining %v, want %v", cd.Remaining, want)
		}
	})

	t.Run("window boundaries count as inside", func(t *testing.T) {
		for _, now := range []time.Time{windows[0].Start, windows[0].End} {
			cd := NextCountdown(windows, now)
			if cd == nil || cd.Kind != WindowClosing {
				t.Errorf("at %v: got %+v, want a closing countdown", now, cd)
			}
		}
		cd := NextCountdown(windows, windows[0].End)
		if cd.Remaining != 0 {
			t.Errorf("at the end boundary: got remaining %v, want 0", cd.Remaining)
		}
	})

	t.Run("between windows counts down to the next open", func(t *testing.T) {
		now := day.Add(2 * time.Hour)
		cd := NextCountdown(windows, now)
		if cd == nil {
			t.Fatal("got nil countdown between windows")
		}
		if cd.Kind != WindowOpening {
			t.Errorf("got kind %q, want opening", cd.Kind)
		}
		if want := windows[1].Start.Sub(now); cd.Remaining != want {
			t.Errorf("got remaining %v, want %v", cd.Remaining, want)
		}
	})

	t.Run("before the first window", func(t *testing.T) {
		now := day
		cd := NextCountdown(windows, now)
		if cd == nil || cd.Kind != WindowOpening {
			t.Fatalf("got %+v, want an opening countdown", cd)
		}
		if want := 15 * time.Minute; cd.Remaining != want {
			t.Errorf("got remaining %v, want %v", cd.Remaining, want)
		}
	})

	t.Run("after the last window there is nothing to count", func(t *testing.T) {
		if cd := NextCountdown(windows, day.Add(12*time.Hour)); cd != nil {
			t.Errorf("got %+v, want nil", cd)
		}
	})

	t.Run("no windows at all", func(t *testing.T) {
		if cd := NextCountdown(nil, day); cd != nil {
			t.Errorf("got %+v, want nil", cd)
		}
	})
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{2*time.Hour + 5*time.Minute, "2h 5m"},
		{time.Hour + 30*time.Second, "1h 0m"},
		{45 * time.Minute, "45m"},
		{59*time.Minute + 59*time.Second, "59m"},
		{30 * time.Second, "30s"},
		{0, "0s"},
		{-5 * time.Second, "0s"},
	}
	for _, tc := range tests {
		if got := FormatRemaining(tc.in); got != tc.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCountdownJSON(t *testing.T) {
	day, windows := dayWindows(t)
	cd := NextCountdown(windows, day.Add(20*time.Minute))

	buf, err := json.Marshal(cd)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	out := string(buf)

	for _, want := range []string{
		`"kind":"window-closing"`,
		`"remaining_ms":1500000`,
		`"remaining":"25m"`,
		`"window":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled countdown %s missing %s", out, want)
		}
	}
}

func TestCountdownString(t *testing.T) {
	cd := Countdown{Kind: WindowClosing, Remaining: 95 * time.Minute}
	if got, want := cd.String(), "closes in 1h 35m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	cd = Countdown{Kind: WindowOpening, Remaining: 40 * time.Second}
	if got, want := cd.String(), "opens in 40s"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
