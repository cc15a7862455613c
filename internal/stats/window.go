// Package stats computes dashboard aggregates over an in-memory dataset.
// Every function is pure: results depend only on the inputs and the supplied
// reference instant, whose location defines calendar day boundaries.
package stats

import "time"

// DateLayout is the calendar-day format used for trend points and projections.
const DateLayout = "2006-01-02"

// Window is a closed time interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. The zero time never does.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// Windows holds the calendar windows used by the aggregates.
type Windows struct {
	Today     Window
	Yesterday Window
	ThisWeek  Window
	LastWeek  Window
	ThisMonth Window
	LastMonth Window
}

// CalendarWindows computes the windows for the calendar containing now.
// Weeks start on Sunday.
func CalendarWindows(now time.Time) Windows {
	today := StartOfDay(now)
	week := today.AddDate(0, 0, -int(today.Weekday()))
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return Windows{
		Today:     span(today, today.AddDate(0, 0, 1)),
		Yesterday: span(today.AddDate(0, 0, -1), today),
		ThisWeek:  span(week, week.AddDate(0, 0, 7)),
		LastWeek:  span(week.AddDate(0, 0, -7), week),
		ThisMonth: span(month, month.AddDate(0, 1, 0)),
		LastMonth: span(month.AddDate(0, -1, 0), month),
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseTimestamp parses an RFC 3339 or date-only string. Date-only values are
// midnight in loc (UTC when nil). Malformed input yields the zero time, which
// every window excludes.
func ParseTimestamp(s string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t
	}
	return time.Time{}
}

// IsDateOnly reports whether s has the bare date layout.
func IsDateOnly(s string) bool {
	return len(s) == len(DateLayout)
}

func span(start, next time.Time) Window {
	return Window{Start: start, End: next.Add(-time.Nanosecond)}
}
