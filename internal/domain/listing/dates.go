// Package listing holds the pure listing engine: calendar-day arithmetic,
// the days-on-market derivation and the multi-criteria property filter.
// Nothing here touches a repository or a clock; callers pass "today" in.
package listing

import (
	"math"
	"strings"
	"time"
)

// dateLayouts covers the forms property dates are captured in: full RFC3339,
// a zone-less datetime from the scraper, and a bare calendar date from forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw date string, reporting ok=false when it cannot.
// Zone-less inputs are interpreted in local time.
func ParseTimestamp(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeToDay parses a raw date string and truncates it to local midnight,
// preserving the calendar date. ok=false when the input does not parse.
func NormalizeToDay(value string) (time.Time, bool) {
	t, ok := ParseTimestamp(value)
	if !ok {
		return time.Time{}, false
	}
	return DayOf(t), true
}

// DayOf truncates a timestamp to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed whole-day distance from b to a, rounding
// partial days up in magnitude toward a's side. Both inputs are expected to
// be midnight-aligned days (see NormalizeToDay); the ceiling keeps results
// stable across DST-shortened or -lengthened days.
func DaysBetween(a, b time.Time) int {
	return int(math.Ceil(a.Sub(b).Hours() / 24))
}
