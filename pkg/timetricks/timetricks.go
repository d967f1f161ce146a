// Package timetricks holds small calendar helpers shared by the tide
// pipeline. Everything here treats a time as belonging to a local calendar
// day rather than an absolute instant.
package timetricks

import (
	"time"
)

const (
	dayKeyFormat   = "2006-01-02"
	shortDayFormat = "01/02"
	weekPlusMinute = 7*24*time.Hour + time.Minute
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayKeyFormat) == t2.Format(dayKeyFormat)
}

func Today(t time.Time) bool {
	return SameDay(t, time.Now())
}

func Tomorrow(t time.Time) bool {
	return Today(t.Add(-24 * time.Hour))
}

// StartOfDay returns midnight at the start of t's calendar day, in t's
// location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TrimClock strips the wall clock from t down to whole seconds. Unlike
// StartOfDay it runs on offset arithmetic and keeps t's sub-second
// component.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

func WithinWeek(t time.Time) bool {
	// Trim current time so it has no wall clock component, just calendar
	// date, and use it to compute the first minute of the coming week.
	// Then check if t occurs before then, as well as after the start of
	// today (minus a minute in case t falls at midnight).
	now := TrimClock(time.Now())
	firstMinuteOfNextWeek := now.Add(weekPlusMinute)
	return t.After(now.Add(-1*time.Minute)) && t.Before(firstMinuteOfNextWeek)
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	return TrimClock(t).Add(hour*time.Hour + minute*time.Minute)
}

// UniqueDay returns a string representation of t that is unique by the day.
// For instance, two separate times on the same calendar day return identical
// strings, which makes it the canonical per-day cache key.
func UniqueDay(t time.Time) string {
	return t.Format(dayKeyFormat)
}

// Day names t's calendar day the way a person would: "Today", "Tomorrow", a
// weekday name inside the coming week, and a short date beyond that.
func Day(t time.Time) string {
	switch {
	case Today(t):
		return "Today"
	case Tomorrow(t):
		return "Tomorrow"
	case WithinWeek(t):
		return t.Weekday().String()
	default:
		return t.Format(shortDayFormat)
	}
}
