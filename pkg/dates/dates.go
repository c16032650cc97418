// Package dates provides the pure date arithmetic behind care scheduling:
// single next-due computation and recurrence expansion over a window. All
// dates are ISO yyyy-mm-dd strings treated at local midnight, so they compare
// correctly as plain strings.
package dates

import (
	"sort"
	"time"
)

const LayoutISO = "2006-01-02"

// Parse parses an ISO yyyy-mm-dd string at local midnight.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, s, time.Local)
}

// Format renders a time as an ISO yyyy-mm-dd string.
func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

// Today returns the current local date as an ISO string.
func Today() string {
	return Format(time.Now())
}

// AddDays returns the date intervalDays after t, day-arithmetic safe across
// DST boundaries.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// NextDue returns base + intervalDays as an ISO date string. It performs no
// validation; callers filter out non-positive intervals before calling.
func NextDue(base string, intervalDays int) string {
	t, err := Parse(base)
	if err != nil {
		t = time.Now()
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	return Format(AddDays(t, intervalDays))
}

// RecurringDates expands the recurrence anchored at base onto [start, end]
// inclusive. The anchor itself is never an occurrence: it records the last
// performed care, so only dates one or more whole intervals away are due.
// The anchor may lie arbitrarily far outside the window; it is first walked
// back past end, then occurrences are collected scanning forward and
// backward. Returns nil when the interval is non-positive or any date fails
// to parse.
func RecurringDates(base string, intervalDays int, start, end string) []string {
	if intervalDays <= 0 {
		return nil
	}
	anchor, err := Parse(base)
	if err != nil {
		return nil
	}
	from, err := Parse(start)
	if err != nil {
		return nil
	}
	until, err := Parse(end)
	if err != nil {
		return nil
	}
	if until.Before(from) {
		return nil
	}

	// Walk the anchor back into or before the window.
	cursor := anchor
	for cursor.After(until) {
		cursor = AddDays(cursor, -intervalDays)
	}

	seen := make(map[string]bool)
	// Forward from the normalized anchor.
	for d := cursor; !d.After(until); d = AddDays(d, intervalDays) {
		if !d.Before(from) {
			seen[Format(d)] = true
		}
	}
	// Backward from the normalized anchor.
	for d := AddDays(cursor, -intervalDays); !d.Before(from); d = AddDays(d, -intervalDays) {
		if !d.After(until) {
			seen[Format(d)] = true
		}
	}
	delete(seen, Format(anchor))

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
