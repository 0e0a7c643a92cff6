package sheetdate

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"full", "05.03.2025 14:07:09", time.Date(2025, 3, 5, 14, 7, 9, 0, loc), true},
		{"comma separator", "05.03.2025, 14:07", time.Date(2025, 3, 5, 14, 7, 0, 0, loc), true},
		{"date only", "5.3.2025", time.Date(2025, 3, 5, 0, 0, 0, 0, loc), true},
		{"iso", "2025-03-05T09:30", time.Date(2025, 3, 5, 9, 30, 0, 0, loc), true},
		{"iso with space", "2025-03-05 09:30:15", time.Date(2025, 3, 5, 9, 30, 15, 0, loc), true},
		{"invalid day", "31.02.2025", time.Time{}, false},
		{"invalid hour", "01.01.2025 25:00", time.Time{}, false},
		{"garbage", "soon", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input, loc)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseZonedInstant(t *testing.T) {
	uzt := time.FixedZone("UZT", 5*60*60)
	cases := map[string]time.Time{
		"2025-03-05T19:30:00.000Z":  time.Date(2025, 3, 6, 0, 30, 0, 0, uzt),
		"2025-03-05T19:30:00Z":      time.Date(2025, 3, 6, 0, 30, 0, 0, uzt),
		"2025-03-05T10:00:00+03:00": time.Date(2025, 3, 5, 12, 0, 0, 0, uzt),
	}
	for input, want := range cases {
		got, ok := Parse(input, uzt)
		if !ok || !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v (ok=%v)", input, want, got, ok)
		}
		if got.Location() != uzt || got.Day() != want.Day() {
			t.Fatalf("%s: expected value in local zone, got %v", input, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 58, 0, time.UTC)
	formatted := Format(now)
	if formatted != "31.12.2025 23:59:58" {
		t.Fatalf("unexpected format: %s", formatted)
	}
	parsed, ok := Parse(formatted, time.UTC)
	if !ok || !parsed.Equal(now) {
		t.Fatalf("expected round trip, got %v", parsed)
	}
}

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	if !StartOfDay(ts).Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day")
	}
	if EndOfDay(ts).Day() != 1 || EndOfDay(ts).Hour() != 23 {
		t.Fatalf("unexpected end of day: %v", EndOfDay(ts))
	}
	if !SameDay(ts, time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC)) {
		t.Fatalf("expected same day")
	}
}
