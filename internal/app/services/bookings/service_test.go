package bookings_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/app/services/bookings"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/infra/storage/memory"
)

type fixture struct {
	svc      *bookings.Service
	listings *memory.ListingRepository
	store    *memory.BookingRepository
	outbox   *memory.OutboxStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	listings := memory.NewListingRepository()
	store := memory.NewBookingRepository()
	outbox := memory.NewOutboxStore()
	return fixture{
		svc: &bookings.Service{
			Bookings: store,
			Listings: listings,
			Outbox:   outbox,
		},
		listings: listings,
		store:    store,
		outbox:   outbox,
	}
}

func (f fixture) addListing(t *testing.T, id string, host string, price int64) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(listing.CreateParams{
		ID:    listing.ListingID(id),
		Host:  listing.HostID(host),
		Title: "Gravel Pad " + id,
		City:  "Moab",
		State: "UT",
		Price: price,
		Now:   time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, f.listings.Save(context.Background(), l))
	return l
}

func futureDay(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func TestRequestBooking(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	b, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID:  "lst-1",
		CheckIn:    futureDay(10),
		CheckOut:   futureDay(13),
		StayType:   "RV",
		GuestName:  "Dana",
		GuestEmail: "dana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, int64(120), b.EstimatedTotal)
	assert.Equal(t, booking.StatusRequested, b.Status)

	stored, err := f.store.ByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.CheckIn, stored.CheckIn)
}

func TestRequestBookingPublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	_, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	require.NoError(t, err)

	records := f.outbox.Drain()
	require.Len(t, records, 1)
	assert.Equal(t, "booking.requested", records[0].Name)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(records[0].Payload, &payload))
	assert.Equal(t, "lst-1", payload["listing_id"])
}

func TestRequestBookingConflict(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	first, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(15),
	})
	require.NoError(t, err)

	_, err = f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(12),
		CheckOut:  futureDay(17),
	})
	assert.ErrorIs(t, err, booking.ErrDatesUnavailable)

	// back-to-back with the existing stay is fine
	_, err = f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(15),
		CheckOut:  futureDay(17),
	})
	assert.NoError(t, err)

	// cancelling the first frees its range
	_, err = f.svc.Decide(context.Background(), "host-1", first.ID, bookings.DecisionCancel)
	require.NoError(t, err)
	_, err = f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(12),
		CheckOut:  futureDay(14),
	})
	assert.NoError(t, err)
}

func TestRequestBookingValidation(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	_, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(10),
	})
	assert.ErrorIs(t, err, booking.ErrCheckOutNotAfter)

	_, err = f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-missing",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestDecide(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	b, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	require.NoError(t, err)
	f.outbox.Drain()

	decided, err := f.svc.Decide(context.Background(), "host-1", b.ID, bookings.DecisionConfirm)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, decided.Status)

	records := f.outbox.Drain()
	require.Len(t, records, 1)
	assert.Equal(t, "booking.confirmed", records[0].Name)

	// terminal bookings reject further decisions
	_, err = f.svc.Decide(context.Background(), "host-1", b.ID, bookings.DecisionCancel)
	assert.ErrorIs(t, err, booking.ErrInvalidState)
}

func TestDecideAuthorization(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)

	b, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), "host-2", b.ID, bookings.DecisionConfirm)
	assert.ErrorIs(t, err, listing.ErrNotOwner)

	_, err = f.svc.Decide(context.Background(), "host-1", b.ID, bookings.Decision("maybe"))
	assert.ErrorIs(t, err, bookings.ErrUnknownDecision)

	_, err = f.svc.Decide(context.Background(), "host-1", "bk-missing", bookings.DecisionConfirm)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCountsForListings(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)
	f.addListing(t, "lst-2", "host-1", 60)

	first, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	require.NoError(t, err)
	second, err := f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-1",
		CheckIn:   futureDay(12),
		CheckOut:  futureDay(14),
	})
	require.NoError(t, err)
	_, err = f.svc.Request(context.Background(), bookings.RequestParams{
		ListingID: "lst-2",
		CheckIn:   futureDay(10),
		CheckOut:  futureDay(12),
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), "host-1", first.ID, bookings.DecisionConfirm)
	require.NoError(t, err)
	_, err = f.svc.Decide(context.Background(), "host-1", second.ID, bookings.DecisionCancel)
	require.NoError(t, err)

	counts, err := f.svc.CountsForListings(context.Background(),
		[]listing.ListingID{"lst-1", "lst-2"})
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCounts{Confirmed: 1, Cancelled: 1}, counts["lst-1"])
	assert.Equal(t, bookings.StatusCounts{Requested: 1}, counts["lst-2"])

	empty, err := f.svc.CountsForListings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestForHost(t *testing.T) {
	f := newFixture(t)
	f.addListing(t, "lst-1", "host-1", 40)
	f.addListing(t, "lst-2", "host-1", 60)
	f.addListing(t, "lst-3", "host-2", 80)

	mk := func(listingID string, from, to int) {
		_, err := f.svc.Request(context.Background(), bookings.RequestParams{
			ListingID: listing.ListingID(listingID),
			CheckIn:   futureDay(from),
			CheckOut:  futureDay(to),
		})
		require.NoError(t, err)
	}
	mk("lst-1", 10, 12)
	mk("lst-2", 10, 12)
	mk("lst-3", 10, 12)

	items, err := f.svc.ForHost(context.Background(), "host-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEmpty(t, item.ListingTitle)
		assert.NotEqual(t, listing.ListingID("lst-3"), item.Booking.ListingID)
	}

	empty, err := f.svc.ForHost(context.Background(), "host-none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
