package period

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange = errors.New("invalid range, from must not be after to")
)

// ParseDate parses a YYYY-MM-DD string into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	ts, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return ts.UTC(), nil
}

// FormatDate renders a UTC midnight back to YYYY-MM-DD.
func FormatDate(ts time.Time) string {
	return ts.UTC().Format(dateLayout)
}

// Range builds an inclusive-from, exclusive-to window from optional
// YYYY-MM-DD bounds. An empty from defaults to the day containing now;
// an empty to defaults to seven days after from. Deterministic for a
// given now, so callers inject the clock.
func Range(from, to string, now time.Time) (Window, error) {
	var start time.Time
	if from == "" {
		start = Truncate(now)
	} else {
		parsed, err := ParseDate(from)
		if err != nil {
			return Window{}, err
		}
		start = parsed
	}

	var end time.Time
	if to == "" {
		end = start.AddDate(0, 0, 7)
	} else {
		parsed, err := ParseDate(to)
		if err != nil {
			return Window{}, err
		}
		// inclusive "to" day
		end = parsed.AddDate(0, 0, 1)
	}

	if end.Before(start) {
		return Window{}, ErrInvalidRange
	}

	return Window{Start: start, End: end}, nil
}

// DayOrToday resolves an optional YYYY-MM-DD date, defaulting to the day
// containing now.
func DayOrToday(date string, now time.Time) (Window, error) {
	if date == "" {
		return Day(now), nil
	}
	start, err := ParseDate(date)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
}
