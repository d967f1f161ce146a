package weir

import (
	"encoding/json"
	"fmt"
	"time"
)

// CountdownKind says which window boundary the clock is running toward.
type CountdownKind string

const (
	// WindowClosing counts down the time left inside the current window.
	WindowClosing CountdownKind = "window-closing"
	// WindowOpening counts down the wait until the next window starts.
	WindowOpening CountdownKind = "window-opening"
)

// Countdown is the time remaining in the current access window, or the wait
// until the next one opens.
type Countdown struct {
	Kind      CountdownKind
	Remaining time.Duration
	Window    AccessWindow
}

// NextCountdown reports the countdown for now against the day's windows:
// time left when now sits inside a window (boundaries count as inside), the
// wait until the earliest later window otherwise, and nil when the day
// holds nothing more.
func NextCountdown(windows []AccessWindow, now time.Time) *Countdown {
	for i := range windows {
		if windows[i].Contains(now) {
			return &Countdown{
				Kind:      WindowClosing,
				Remaining: windows[i].End.Sub(now),
				Window:    windows[i],
			}
		}
	}
	for i := range windows {
		if windows[i].Start.After(now) {
			return &Countdown{
				Kind:      WindowOpening,
				Remaining: windows[i].Start.Sub(now),
				Window:    windows[i],
			}
		}
	}
	return nil
}

// FormatRemaining renders a countdown the way the header shows it: hours
// with minutes, bare minutes once under an hour, bare seconds under a
// minute.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func (c *Countdown) String() string {
	switch c.Kind {
	case WindowClosing:
		return fmt.Sprintf("closes in %s", FormatRemaining(c.Remaining))
	default:
		return fmt.Sprintf("opens in %s", FormatRemaining(c.Remaining))
	}
}

func (c *Countdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        CountdownKind `json:"kind"`
		RemainingMS int64         `json:"remaining_ms"`
		Remaining   string        `json:"remaining"`
		Window      AccessWindow  `json:"window"`
	}{
		Kind:        c.Kind,
		RemainingMS: c.Remaining.Milliseconds(),
		Remaining:   FormatRemaining(c.Remaining),
		Window:      c.Window,
	})
}
