package booking_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/listing"
)

var testNow = time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestBooking(t *testing.T, checkIn, checkOut string, stay booking.StayType, rate int64) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(booking.CreateParams{
		ID:          "bk-1",
		ListingID:   listing.ListingID("lst-1"),
		CheckIn:     day(checkIn),
		CheckOut:    day(checkOut),
		StayType:    stay,
		NightlyRate: rate,
		GuestName:   "Dana",
		GuestEmail:  "dana@example.com",
		Now:         testNow,
	})
	require.NoError(t, err)
	return b
}

func TestNewBookingPricing(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		stay       booking.StayType
		rate       int64
		wantNights int
		wantTotal  int64
	}{
		{name: "plain rv stay", checkIn: "2026-06-01", checkOut: "2026-06-04", stay: booking.StayRV, rate: 40, wantNights: 3, wantTotal: 120},
		{name: "land stay", checkIn: "2026-06-01", checkOut: "2026-06-02", stay: booking.StayLand, rate: 25, wantNights: 1, wantTotal: 25},
		{name: "host rig premium", checkIn: "2026-06-01", checkOut: "2026-06-03", stay: booking.StayRVProvided, rate: 40, wantNights: 2, wantTotal: 180},
		{name: "unknown rate", checkIn: "2026-06-01", checkOut: "2026-06-03", stay: booking.StayRV, rate: 0, wantNights: 2, wantTotal: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBooking(t, tt.checkIn, tt.checkOut, tt.stay, tt.rate)
			assert.Equal(t, tt.wantNights, b.Nights)
			assert.Equal(t, tt.wantTotal, b.EstimatedTotal)
			assert.Equal(t, booking.StatusRequested, b.Status)
		})
	}
}

func TestNewBookingValidation(t *testing.T) {
	_, err := booking.NewBooking(booking.CreateParams{
		ID: "bk-1", ListingID: "lst-1",
		CheckIn: day("2026-06-03"), CheckOut: day("2026-06-03"),
		Now: testNow,
	})
	assert.ErrorIs(t, err, booking.ErrCheckOutNotAfter)

	_, err = booking.NewBooking(booking.CreateParams{
		ID: "bk-1", ListingID: "lst-1",
		CheckIn: day("2026-06-04"), CheckOut: day("2026-06-03"),
		Now: testNow,
	})
	assert.ErrorIs(t, err, booking.ErrCheckOutNotAfter)

	_, err = booking.NewBooking(booking.CreateParams{
		ID: "bk-1", ListingID: "lst-1",
		CheckIn: day("2026-04-20"), CheckOut: day("2026-04-25"),
		Now: testNow,
	})
	assert.ErrorIs(t, err, booking.ErrCheckInInPast)
}

func TestNewBookingSameDayCheckInAllowed(t *testing.T) {
	b, err := booking.NewBooking(booking.CreateParams{
		ID: "bk-1", ListingID: "lst-1",
		CheckIn: day("2026-05-01"), CheckOut: day("2026-05-02"),
		Now: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Nights)
}

func TestNewBookingTruncatesNote(t *testing.T) {
	long := strings.Repeat("é", booking.MaxNoteLen+40)
	b, err := booking.NewBooking(booking.CreateParams{
		ID: "bk-1", ListingID: "lst-1",
		CheckIn: day("2026-06-01"), CheckOut: day("2026-06-02"),
		Note: long, Now: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, booking.MaxNoteLen, len([]rune(b.Note)))
}

func TestLifecycleTransitions(t *testing.T) {
	b := newTestBooking(t, "2026-06-01", "2026-06-03", booking.StayRV, 40)
	require.NoError(t, b.Confirm(testNow))
	assert.Equal(t, booking.StatusConfirmed, b.Status)

	// terminal states stay put
	assert.ErrorIs(t, b.Confirm(testNow), booking.ErrInvalidState)
	assert.ErrorIs(t, b.Cancel(testNow), booking.ErrInvalidState)
	assert.Equal(t, booking.StatusConfirmed, b.Status)

	c := newTestBooking(t, "2026-06-01", "2026-06-03", booking.StayRV, 40)
	require.NoError(t, c.Cancel(testNow))
	assert.Equal(t, booking.StatusCancelled, c.Status)
	assert.ErrorIs(t, c.Confirm(testNow), booking.ErrInvalidState)
}

func TestLifecycleEvents(t *testing.T) {
	b := newTestBooking(t, "2026-06-01", "2026-06-03", booking.StayRV, 40)
	events := b.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.requested", events[0].Name())

	require.NoError(t, b.Confirm(testNow))
	events = b.PendingEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "booking.confirmed", events[1].Name())

	b.ClearEvents()
	assert.Empty(t, b.PendingEvents())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want booking.Status
		ok   bool
	}{
		{raw: "requested", want: booking.StatusRequested, ok: true},
		{raw: "pending", want: booking.StatusRequested, ok: true},
		{raw: "Confirmed", want: booking.StatusConfirmed, ok: true},
		{raw: "approved", want: booking.StatusConfirmed, ok: true},
		{raw: "cancelled", want: booking.StatusCancelled, ok: true},
		{raw: "canceled", want: booking.StatusCancelled, ok: true},
		{raw: "declined", want: booking.StatusCancelled, ok: true},
		{raw: "  CANCELLED  ", want: booking.StatusCancelled, ok: true},
		{raw: "archived", ok: false},
		{raw: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := booking.ParseStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSafeStayType(t *testing.T) {
	assert.Equal(t, booking.StayLand, booking.SafeStayType("land"))
	assert.Equal(t, booking.StayRVProvided, booking.SafeStayType(" rv_provided "))
	assert.Equal(t, booking.StayRV, booking.SafeStayType("camper"))
	assert.Equal(t, booking.StayRV, booking.SafeStayType(""))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, booking.StatusRequested.Terminal())
	assert.True(t, booking.StatusConfirmed.Terminal())
	assert.True(t, booking.StatusCancelled.Terminal())
}
