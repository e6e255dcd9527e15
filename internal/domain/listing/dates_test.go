package listing

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"rfc3339", "2025-07-20T10:00:00Z", true},
		{"zoneless datetime", "2025-07-20T10:00:00", true},
		{"bare date", "2025-07-20", true},
		{"padded", "  2025-07-20  ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"garbage", "not-a-date", false},
		{"partial", "2025-07", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseTimestamp(tc.value)
			if ok != tc.ok {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			}
		})
	}
}

func TestNormalizeToDay(t *testing.T) {
	day, ok := NormalizeToDay("2025-07-20T15:45:30")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.July || day.Day() != 20 {
		t.Fatalf("calendar date changed: %v", day)
	}

	if _, ok := NormalizeToDay("nope"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestNormalizeToDay_Idempotent(t *testing.T) {
	day, ok := NormalizeToDay("2025-07-20T23:59:59")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if again := DayOf(day); !again.Equal(day) {
		t.Fatalf("DayOf not idempotent: %v != %v", again, day)
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", day(2025, time.July, 20), day(2025, time.July, 20), 0},
		{"one day forward", day(2025, time.July, 21), day(2025, time.July, 20), 1},
		{"one day back", day(2025, time.July, 19), day(2025, time.July, 20), -1},
		{"across month", day(2025, time.August, 3), day(2025, time.July, 20), 14},
		{"across year", day(2026, time.January, 1), day(2025, time.December, 31), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.a, tc.b); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDaysBetween_AntiSymmetric(t *testing.T) {
	a := time.Date(2025, time.July, 8, 0, 0, 0, 0, time.Local)
	b := time.Date(2025, time.July, 12, 0, 0, 0, 0, time.Local)
	if DaysBetween(a, b) != -DaysBetween(b, a) {
		t.Fatalf("expected anti-symmetry, got %d and %d", DaysBetween(a, b), DaysBetween(b, a))
	}
}
