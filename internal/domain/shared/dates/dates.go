// Package dates holds calendar-day helpers shared by booking and calendar code.
// A day key is the canonical YYYY-MM-DD form of a local calendar date; all
// comparisons happen on midnight-normalized values.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the canonical day-key layout.
const KeyLayout = "2006-01-02"

// ErrBadKey marks a malformed day key.
var ErrBadKey = errors.New("dates: invalid day key")

// Key renders t as a zero-padded YYYY-MM-DD key using t's own location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key into a midnight local time.
// Out-of-range components (month 13, day 32) are rejected.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return t, nil
}

// Midnight truncates t to the start of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfMonth returns the first day of t's month at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month at midnight.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// AddMonths moves the month anchor by n months, landing on the first of the
// resulting month. Year rollover is handled by time.Date normalization.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// Nights counts the nights between check-in and check-out (check-out
// exclusive). Both ends are normalized to UTC midnights first so the division
// is exact regardless of DST in the inputs' locations.
func Nights(checkIn, checkOut time.Time) int {
	in := utcMidnight(checkIn)
	out := utcMidnight(checkOut)
	return int(out.Sub(in) / (24 * time.Hour))
}

func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
