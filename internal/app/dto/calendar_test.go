package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/app/dto"
	"github.com/Beto956/rvnb/internal/app/services/calendarview"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

func TestMapCalendarMonth(t *testing.T) {
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

	day := time.Date(2026, time.December, 10, 0, 0, 0, 0, time.Local)
	meta, err := calendar.NewDayMeta(l.ID, dates.Key(day), true, "winterized", calendar.SignalNone, "", time.Now())
	require.NoError(t, err)

	var stays []*booking.Booking
	for i := 0; i < calendar.MaxVisibleBookings+1; i++ {
		b, err := booking.NewBooking(booking.CreateParams{
			ID:          booking.BookingID(string(rune('a' + i))),
			ListingID:   l.ID,
			CheckIn:     day,
			CheckOut:    day.AddDate(0, 0, 2),
			NightlyRate: 45,
			Now:         time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		stays = append(stays, b)
	}

	view := &calendarview.MonthView{
		Listing: l,
		Anchor:  time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local),
		Cells: []calendar.DayCell{{
			GridDay:  calendar.GridDay{Date: day, Key: dates.Key(day), InMonth: true},
			Bookings: stays,
			Meta:     &meta,
		}},
	}

	out := dto.MapCalendarMonth(view)
	assert.Equal(t, "lst-1", out.ListingID)
	assert.Equal(t, "2026-12", out.Month)
	assert.Equal(t, "2026-11", out.PrevMonth)
	assert.Equal(t, "2027-01", out.NextMonth)

	require.Len(t, out.Days, 1)
	cell := out.Days[0]
	assert.Len(t, cell.Bookings, calendar.MaxVisibleBookings)
	assert.Equal(t, 1, cell.MoreCount)
	require.NotNil(t, cell.Meta)
	assert.True(t, cell.Meta.Blocked)
	assert.Equal(t, "winterized", cell.Meta.BlockReason)
}
