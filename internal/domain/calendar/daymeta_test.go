package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

var metaNow = time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestMetaKey(t *testing.T) {
	assert.Equal(t, "lst-1__2026-05-04", calendar.MetaKey("lst-1", "2026-05-04"))

	meta, err := calendar.NewDayMeta("lst-1", "2026-05-04", false, "", calendar.SignalNone, "note", metaNow)
	require.NoError(t, err)
	assert.Equal(t, "lst-1__2026-05-04", meta.Key())
}

func TestNewDayMeta(t *testing.T) {
	meta, err := calendar.NewDayMeta("lst-1", "2026-05-04", true, "  regrading the pad  ", calendar.SignalMaintenance, "  call before arrival  ", metaNow)
	require.NoError(t, err)
	assert.True(t, meta.Blocked)
	assert.Equal(t, "regrading the pad", meta.BlockReason)
	assert.Equal(t, calendar.SignalMaintenance, meta.Signal)
	assert.Equal(t, "call before arrival", meta.Note)
	assert.False(t, meta.Empty())
}

func TestNewDayMetaDiscardsReasonWhenUnblocked(t *testing.T) {
	meta, err := calendar.NewDayMeta("lst-1", "2026-05-04", false, "stale reason", calendar.SignalHigh, "", metaNow)
	require.NoError(t, err)
	assert.False(t, meta.Blocked)
	assert.Empty(t, meta.BlockReason)
	assert.Equal(t, calendar.SignalHigh, meta.Signal)
}

func TestNewDayMetaValidation(t *testing.T) {
	_, err := calendar.NewDayMeta("", "2026-05-04", false, "", calendar.SignalNone, "", metaNow)
	assert.ErrorIs(t, err, calendar.ErrListingRequired)

	_, err = calendar.NewDayMeta("lst-1", "05/04/2026", false, "", calendar.SignalNone, "", metaNow)
	assert.ErrorIs(t, err, dates.ErrBadKey)

	_, err = calendar.NewDayMeta("lst-1", "2026-02-30", false, "", calendar.SignalNone, "", metaNow)
	assert.ErrorIs(t, err, dates.ErrBadKey)
}

func TestDayMetaEmpty(t *testing.T) {
	meta, err := calendar.NewDayMeta("lst-1", "2026-05-04", false, "", calendar.SignalNone, "", metaNow)
	require.NoError(t, err)
	assert.True(t, meta.Empty())
}

func TestParseSignal(t *testing.T) {
	tests := []struct {
		raw  string
		want calendar.Signal
	}{
		{raw: "high", want: calendar.SignalHigh},
		{raw: " Maintenance ", want: calendar.SignalMaintenance},
		{raw: "PRIVATE", want: calendar.SignalPrivate},
		{raw: "flex", want: calendar.SignalFlex},
		{raw: "", want: calendar.SignalNone},
		{raw: "surge", want: calendar.SignalNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calendar.ParseSignal(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSignalLabel(t *testing.T) {
	assert.Equal(t, "High Demand", calendar.SignalHigh.Label())
	assert.Equal(t, "Maintenance", calendar.SignalMaintenance.Label())
	assert.Equal(t, "Private Use", calendar.SignalPrivate.Label())
	assert.Equal(t, "Flexible", calendar.SignalFlex.Label())
	assert.Equal(t, "None", calendar.SignalNone.Label())
}
