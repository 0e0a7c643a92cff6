// Package sheetdate parses and formats the timestamps used by the record store.
package sheetdate

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Layout is the canonical timestamp written to the record store.
const Layout = "02.01.2006 15:04:05"

// DateLayout is used for calendar dates without time.
const DateLayout = "2006-01-02"

// DeadlineLayout is used for task deadlines.
const DeadlineLayout = "2006-01-02 15:04"

// Format renders t as DD.MM.YYYY HH:mm:ss.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads zoned RFC 3339 instants, DD.MM.YYYY[ HH:mm[:ss]] and ISO
// YYYY-MM-DD[ T]HH:mm[:ss]. Unzoned values are read in loc; any non-digit
// is treated as a separator. The result is in loc.
func Parse(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	// Script endpoints serialize date cells as zoned ISO instants.
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), true
	}
	parts := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(parts) < 3 {
		return time.Time{}, false
	}

	nums := make([]int, 0, 6)
	for i, part := range parts {
		if i == 6 {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, false
		}
		nums = append(nums, n)
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}
	for len(nums) < 6 {
		nums = append(nums, 0)
	}
	hour, minute, second := nums[3], nums[4], nums[5]

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
