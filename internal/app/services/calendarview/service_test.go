package calendarview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/app/services/calendarview"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
	"github.com/Beto956/rvnb/internal/infra/storage/memory"
)

type fixture struct {
	svc      *calendarview.Service
	meta     *memory.DayMetaRepository
	bookings *memory.BookingRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	listings := memory.NewListingRepository()
	meta := memory.NewDayMetaRepository()
	bookings := memory.NewBookingRepository()

	l, err := listing.NewListing(listing.CreateParams{
		ID:    "lst-1",
		Host:  "host-1",
		Title: "Creekside Pad",
		City:  "Bend",
		State: "OR",
		Price: 45,
		Now:   time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, listings.Save(context.Background(), l))

	return fixture{
		svc: &calendarview.Service{
			Listings: listings,
			Bookings: bookings,
			Meta:     meta,
		},
		meta:     meta,
		bookings: bookings,
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, time.June, 17, 9, 0, 0, 0, time.UTC)

	anchor, err := calendarview.ParseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), anchor)

	anchor, err = calendarview.ParseMonth("2026-09", now)
	require.NoError(t, err)
	assert.Equal(t, time.September, anchor.Month())

	for _, raw := range []string{"2026", "09-2026", "2026-9", "soon"} {
		_, err := calendarview.ParseMonth(raw, now)
		assert.ErrorIs(t, err, calendarview.ErrBadMonth, raw)
	}
}

func TestMonth(t *testing.T) {
	f := newFixture(t)
	anchor := time.Now().AddDate(0, 1, 0)
	day := dates.Key(dates.StartOfMonth(anchor).AddDate(0, 0, 9))

	saved, err := f.svc.SaveDay(context.Background(), "host-1", calendarview.SaveDayParams{
		ListingID: "lst-1",
		Day:       day,
		Blocked:   true,
		Signal:    "high",
	})
	require.NoError(t, err)

	view, err := f.svc.Month(context.Background(), "host-1", "lst-1", anchor)
	require.NoError(t, err)
	assert.Equal(t, dates.StartOfMonth(anchor), view.Anchor)
	require.NotNil(t, view.Listing)
	assert.Equal(t, "Creekside Pad", view.Listing.Title)

	var cell *calendar.DayCell
	for i := range view.Cells {
		if view.Cells[i].Key == day {
			cell = &view.Cells[i]
		}
	}
	require.NotNil(t, cell, "saved day missing from grid")
	require.NotNil(t, cell.Meta)
	assert.True(t, cell.Meta.Blocked)
	assert.Equal(t, saved.Signal, cell.Meta.Signal)
}

// Booking dates arrive as local-midnight day keys; the month anchor must sit
// in the same location or every cell comparison drifts by the UTC offset.
func TestMonthBookingAlignment(t *testing.T) {
	f := newFixture(t)

	checkIn, err := dates.ParseKey("2027-06-02")
	require.NoError(t, err)
	checkOut, err := dates.ParseKey("2027-06-05")
	require.NoError(t, err)
	b, err := booking.NewBooking(booking.CreateParams{
		ID:          "bk-1",
		ListingID:   "lst-1",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		NightlyRate: 45,
		Now:         time.Date(2027, time.May, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, f.bookings.Save(context.Background(), b))

	anchor, err := calendarview.ParseMonth("2027-06", time.Now())
	require.NoError(t, err)
	view, err := f.svc.Month(context.Background(), "host-1", "lst-1", anchor)
	require.NoError(t, err)

	byKey := make(map[string]calendar.DayCell, len(view.Cells))
	for _, cell := range view.Cells {
		byKey[cell.Key] = cell
	}
	for _, day := range []string{"2027-06-02", "2027-06-03", "2027-06-04"} {
		assert.Len(t, byKey[day].Bookings, 1, day)
	}
	assert.Empty(t, byKey["2027-06-01"].Bookings, "day before check-in must be free")
	assert.Empty(t, byKey["2027-06-05"].Bookings, "check-out day must be free")
}

func TestMonthAuthorization(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Month(context.Background(), "host-2", "lst-1", time.Now())
	assert.ErrorIs(t, err, listing.ErrNotOwner)

	_, err = f.svc.Month(context.Background(), "host-1", "lst-missing", time.Now())
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestSaveDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	meta, err := f.svc.SaveDay(ctx, "host-1", calendarview.SaveDayParams{
		ListingID:   "lst-1",
		Day:         "2026-07-10",
		Blocked:     true,
		BlockReason: "  regrading the pad  ",
		Signal:      "maintenance",
		Note:        "call before arriving",
	})
	require.NoError(t, err)
	assert.Equal(t, "regrading the pad", meta.BlockReason)
	assert.Equal(t, calendar.SignalMaintenance, meta.Signal)

	stored, ok, err := f.meta.Get(ctx, "lst-1", "2026-07-10")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, meta.Note, stored.Note)

	// saving an empty meta clears the record
	_, err = f.svc.SaveDay(ctx, "host-1", calendarview.SaveDayParams{
		ListingID: "lst-1",
		Day:       "2026-07-10",
	})
	require.NoError(t, err)
	_, ok, err = f.meta.Get(ctx, "lst-1", "2026-07-10")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveDayValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SaveDay(context.Background(), "host-2", calendarview.SaveDayParams{
		ListingID: "lst-1",
		Day:       "2026-07-10",
	})
	assert.ErrorIs(t, err, listing.ErrNotOwner)

	_, err = f.svc.SaveDay(context.Background(), "host-1", calendarview.SaveDayParams{
		ListingID: "lst-1",
		Day:       "July 10th",
	})
	assert.ErrorIs(t, err, dates.ErrBadKey)
}
