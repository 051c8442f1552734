package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

func TestKeyRoundTrip(t *testing.T) {
	day, err := dates.ParseKey("2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-07", dates.Key(day))
	assert.Equal(t, 0, day.Hour())
}

func TestParseKeyRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "wrong layout", raw: "03/07/2026"},
		{name: "month out of range", raw: "2026-13-01"},
		{name: "day out of range", raw: "2026-02-30"},
		{name: "not a date", raw: "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dates.ParseKey(tt.raw)
			assert.ErrorIs(t, err, dates.ErrBadKey)
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "one night", checkIn: "2026-06-01", checkOut: "2026-06-02", want: 1},
		{name: "week", checkIn: "2026-06-01", checkOut: "2026-06-08", want: 7},
		{name: "across month end", checkIn: "2026-01-30", checkOut: "2026-02-02", want: 3},
		{name: "across DST spring forward", checkIn: "2026-03-07", checkOut: "2026-03-09", want: 2},
		{name: "same day", checkIn: "2026-06-01", checkOut: "2026-06-01", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := dates.ParseKey(tt.checkIn)
			require.NoError(t, err)
			out, err := dates.ParseKey(tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dates.Nights(in, out))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	anchor := time.Date(2026, time.February, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-01", dates.Key(dates.StartOfMonth(anchor)))
	assert.Equal(t, "2026-02-28", dates.Key(dates.EndOfMonth(anchor)))

	leap := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2028-02-29", dates.Key(dates.EndOfMonth(leap)))
}

func TestAddMonthsLandsOnFirst(t *testing.T) {
	anchor := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-01", dates.Key(dates.AddMonths(anchor, 1)))
	assert.Equal(t, "2025-12-01", dates.Key(dates.AddMonths(anchor, -1)))
	assert.Equal(t, "2027-01-01", dates.Key(dates.AddMonths(anchor, 12)))
}

func TestMidnightAndSameDay(t *testing.T) {
	late := time.Date(2026, time.July, 4, 23, 59, 59, 0, time.UTC)
	early := time.Date(2026, time.July, 4, 0, 0, 1, 0, time.UTC)
	assert.True(t, dates.SameDay(late, early))
	assert.Equal(t, time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC), dates.Midnight(late))
	assert.False(t, dates.SameDay(late, dates.AddDays(late, 1)))
}
