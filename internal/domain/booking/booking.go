package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

var (
	ErrCheckOutNotAfter = errors.New("booking: check-out must be after check-in")
	ErrCheckInInPast    = errors.New("booking: check-in date is in the past")
	ErrInvalidState     = errors.New("booking: invalid state transition")
	ErrDatesUnavailable = errors.New("booking: dates not available")
	ErrNotFound         = errors.New("booking: not found")
)

type BookingID string

// Status is the lifecycle state of a booking. Requested is the only
// non-terminal state; confirmed and cancelled are final.
type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw stored status onto the current vocabulary. Older
// documents used pending/approved/declined; those decode to their modern
// equivalents.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "requested", "pending":
		return StatusRequested, true
	case "confirmed", "approved":
		return StatusConfirmed, true
	case "cancelled", "canceled", "declined":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// StayType is the occupancy category. A host-provided RV carries a fixed
// nightly surcharge.
type StayType string

const (
	StayRV         StayType = "RV"
	StayLand       StayType = "LAND"
	StayRVProvided StayType = "RV_PROVIDED"
)

// RVProvidedPremium is the per-night surcharge, in whole dollars, for staying
// in the host's own rig.
const RVProvidedPremium int64 = 50

func SafeStayType(raw string) StayType {
	switch StayType(strings.ToUpper(strings.TrimSpace(raw))) {
	case StayLand:
		return StayLand
	case StayRVProvided:
		return StayRVProvided
	default:
		return StayRV
	}
}

// Premium returns the nightly surcharge for the stay type.
func (t StayType) Premium() int64 {
	if t == StayRVProvided {
		return RVProvidedPremium
	}
	return 0
}

// MaxNoteLen bounds the guest note persisted with a request.
const MaxNoteLen = 500

// Booking is a traveler's request to occupy a listing for a date range.
// CheckIn/CheckOut are midnight-normalized; the range is half-open
// [CheckIn, CheckOut).
type Booking struct {
	ID             BookingID
	ListingID      listing.ListingID
	CheckIn        time.Time
	CheckOut       time.Time
	StayType       StayType
	Nights         int
	EstimatedTotal int64
	Note           string
	GuestName      string
	GuestEmail     string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
	EventRecorder
}

type Repository interface {
	ByID(ctx context.Context, id BookingID) (*Booking, error)
	ByListing(ctx context.Context, listingID listing.ListingID) ([]*Booking, error)
	ByListings(ctx context.Context, listingIDs []listing.ListingID) ([]*Booking, error)
	Save(ctx context.Context, b *Booking) error
}

type CreateParams struct {
	ID          BookingID
	ListingID   listing.ListingID
	CheckIn     time.Time
	CheckOut    time.Time
	StayType    StayType
	NightlyRate int64
	Note        string
	GuestName   string
	GuestEmail  string
	Now         time.Time
}

// NewBooking validates the range, prices the stay and returns a booking in
// the requested state. The availability scan against existing bookings is the
// caller's responsibility and must run before persisting.
func NewBooking(params CreateParams) (*Booking, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, errors.New("booking: id is required")
	}
	if strings.TrimSpace(string(params.ListingID)) == "" {
		return nil, errors.New("booking: listing id is required")
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}
	checkIn := dates.Midnight(params.CheckIn)
	checkOut := dates.Midnight(params.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, ErrCheckOutNotAfter
	}
	if checkIn.Before(dates.Midnight(now)) {
		return nil, ErrCheckInInPast
	}

	stay := SafeStayType(string(params.StayType))
	nights := dates.Nights(checkIn, checkOut)
	total := int64(nights) * (params.NightlyRate + stay.Premium())

	b := &Booking{
		ID:             params.ID,
		ListingID:      params.ListingID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		StayType:       stay,
		Nights:         nights,
		EstimatedTotal: total,
		Note:           truncateNote(params.Note),
		GuestName:      strings.TrimSpace(params.GuestName),
		GuestEmail:     strings.TrimSpace(params.GuestEmail),
		Status:         StatusRequested,
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}
	b.Record(BookingRequested{
		BookingID: b.ID,
		ListingID: b.ListingID,
		CheckIn:   dates.Key(b.CheckIn),
		CheckOut:  dates.Key(b.CheckOut),
		StayType:  b.StayType,
		Nights:    b.Nights,
		Total:     b.EstimatedTotal,
		At:        b.CreatedAt,
	})
	return b, nil
}

// Confirm approves a requested booking. Terminal states stay put.
func (b *Booking) Confirm(now time.Time) error {
	if b.Status != StatusRequested {
		return ErrInvalidState
	}
	b.Status = StatusConfirmed
	b.UpdatedAt = now.UTC()
	b.Record(BookingConfirmed{BookingID: b.ID, ListingID: b.ListingID, At: b.UpdatedAt})
	return nil
}

// Cancel declines a requested booking. Terminal states stay put.
func (b *Booking) Cancel(now time.Time) error {
	if b.Status != StatusRequested {
		return ErrInvalidState
	}
	b.Status = StatusCancelled
	b.UpdatedAt = now.UTC()
	b.Record(BookingCancelled{BookingID: b.ID, ListingID: b.ListingID, At: b.UpdatedAt})
	return nil
}

func truncateNote(note string) string {
	note = strings.TrimSpace(note)
	runes := []rune(note)
	if len(runes) > MaxNoteLen {
		return string(runes[:MaxNoteLen])
	}
	return note
}
