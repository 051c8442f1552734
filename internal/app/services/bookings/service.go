package bookings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Beto956/rvnb/internal/domain/booking"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/infra/outbox"
)

type Service struct {
	Bookings booking.Repository
	Listings domainlisting.Repository
	Outbox   outbox.Store
	Logger   *slog.Logger
}

type RequestParams struct {
	ListingID  domainlisting.ListingID
	CheckIn    time.Time
	CheckOut   time.Time
	StayType   string
	Note       string
	GuestName  string
	GuestEmail string
}

// Request places a booking request after scanning the listing's existing
// bookings for overlap. The scan and insert are not atomic; a race between
// two requests is settled by the host at decision time.
func (s *Service) Request(ctx context.Context, params RequestParams) (*booking.Booking, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	l, err := s.Listings.ByID(ctx, params.ListingID)
	if err != nil {
		return nil, err
	}
	existing, err := s.Bookings.ByListing(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	b, err := booking.NewBooking(booking.CreateParams{
		ID:          booking.BookingID(uuid.NewString()),
		ListingID:   l.ID,
		CheckIn:     params.CheckIn,
		CheckOut:    params.CheckOut,
		StayType:    booking.StayType(params.StayType),
		NightlyRate: l.Price,
		Note:        params.Note,
		GuestName:   params.GuestName,
		GuestEmail:  params.GuestEmail,
		Now:         time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if err := booking.CheckAvailability(b.CheckIn, b.CheckOut, existing); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := outbox.RecordEvents(ctx, s.Outbox, b.PendingEvents()); err != nil {
		if s.Logger != nil {
			s.Logger.Error("outbox append failed", "booking_id", b.ID, "error", err)
		}
	}
	b.ClearEvents()
	if s.Logger != nil {
		s.Logger.Info("booking requested",
			"booking_id", b.ID, "listing_id", b.ListingID,
			"nights", b.Nights, "total", b.EstimatedTotal)
	}
	return b, nil
}

// Decision is the host's verdict on a requested booking.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionCancel  Decision = "cancel"
)

var ErrUnknownDecision = errors.New("bookings: unknown decision")

// Decide applies a host decision. The host must own the booking's listing and
// the booking must still be in the requested state.
func (s *Service) Decide(ctx context.Context, host domainlisting.HostID, id booking.BookingID, decision Decision) (*booking.Booking, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	b, err := s.Bookings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l, err := s.Listings.ByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(host) {
		return nil, domainlisting.ErrNotOwner
	}
	now := time.Now()
	switch decision {
	case DecisionConfirm:
		err = b.Confirm(now)
	case DecisionCancel:
		err = b.Cancel(now)
	default:
		return nil, ErrUnknownDecision
	}
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := outbox.RecordEvents(ctx, s.Outbox, b.PendingEvents()); err != nil {
		if s.Logger != nil {
			s.Logger.Error("outbox append failed", "booking_id", b.ID, "error", err)
		}
	}
	b.ClearEvents()
	if s.Logger != nil {
		s.Logger.Info("booking decided", "booking_id", b.ID, "status", b.Status)
	}
	return b, nil
}

// HostBooking is one booking joined with the title of the listing it is for.
type HostBooking struct {
	Booking      *booking.Booking
	ListingTitle string
}

// ForHost lists every booking across the host's listings, newest request
// first.
func (s *Service) ForHost(ctx context.Context, host domainlisting.HostID) ([]HostBooking, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	owned, err := s.Listings.ByHost(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, nil
	}
	ids := make([]domainlisting.ListingID, 0, len(owned))
	titles := make(map[domainlisting.ListingID]string, len(owned))
	for _, l := range owned {
		ids = append(ids, l.ID)
		titles[l.ID] = l.Title
	}
	items, err := s.Bookings.ByListings(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]HostBooking, 0, len(items))
	for _, b := range items {
		out = append(out, HostBooking{Booking: b, ListingTitle: titles[b.ListingID]})
	}
	return out, nil
}

// StatusCounts tallies a listing's bookings per lifecycle state.
type StatusCounts struct {
	Requested int
	Confirmed int
	Cancelled int
}

// CountsForListings tallies booking states across the given listings for the
// host dashboard.
func (s *Service) CountsForListings(ctx context.Context, ids []domainlisting.ListingID) (map[domainlisting.ListingID]StatusCounts, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	items, err := s.Bookings.ByListings(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[domainlisting.ListingID]StatusCounts, len(ids))
	for _, b := range items {
		counts := out[b.ListingID]
		switch b.Status {
		case booking.StatusRequested:
			counts.Requested++
		case booking.StatusConfirmed:
			counts.Confirmed++
		case booking.StatusCancelled:
			counts.Cancelled++
		}
		out[b.ListingID] = counts
	}
	return out, nil
}

// ForListing lists the bookings of a single listing, earliest check-in first.
func (s *Service) ForListing(ctx context.Context, listingID domainlisting.ListingID) ([]*booking.Booking, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	return s.Bookings.ByListing(ctx, listingID)
}

func (s *Service) ensureDependencies() error {
	switch {
	case s.Bookings == nil:
		return errors.New("bookings: booking repository required")
	case s.Listings == nil:
		return errors.New("bookings: listing repository required")
	default:
		return nil
	}
}
