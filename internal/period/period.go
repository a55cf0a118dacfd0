package period

import (
	"errors"
	"time"
)

// Type discriminates aggregation windows and is part of every snapshot key.
type Type string

const (
	Daily   Type = "daily"
	Weekly  Type = "weekly"
	Monthly Type = "monthly"
)

var ErrInvalidType = errors.New("invalid period type")

func (t Type) Valid() bool {
	return t == Daily || t == Weekly || t == Monthly
}

// Window is a half-open date range [Start, End). Both bounds are UTC
// midnights; Start <= End always holds for windows built by this package.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts time.Time) bool {
	ts = ts.UTC()
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// Day returns the daily window containing now.
func Day(now time.Time) Window {
	start := Truncate(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekOf returns the Monday-based weekly window containing now.
func WeekOf(now time.Time) Window {
	day := Truncate(now)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthOf returns the calendar-month window containing now.
func MonthOf(now time.Time) Window {
	y, m, _ := now.UTC().Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// ForType maps a period type to its window containing now.
func ForType(t Type, now time.Time) (Window, error) {
	switch t {
	case Daily:
		return Day(now), nil
	case Weekly:
		return WeekOf(now), nil
	case Monthly:
		return MonthOf(now), nil
	default:
		return Window{}, ErrInvalidType
	}
}

// Truncate drops the time-of-day component, keeping the UTC date.
func Truncate(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
