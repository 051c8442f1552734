package booking

import (
	"time"

	"github.com/Beto956/rvnb/internal/domain/listing"
)

// Event is a booking lifecycle fact destined for the outbox.
type Event interface {
	Name() string
	Aggregate() string
}

type BookingRequested struct {
	BookingID BookingID         `json:"booking_id"`
	ListingID listing.ListingID `json:"listing_id"`
	CheckIn   string            `json:"check_in"`
	CheckOut  string            `json:"check_out"`
	StayType  StayType          `json:"stay_type"`
	Nights    int               `json:"nights"`
	Total     int64             `json:"estimated_total"`
	At        time.Time         `json:"at"`
}

func (e BookingRequested) Name() string      { return "booking.requested" }
func (e BookingRequested) Aggregate() string { return string(e.BookingID) }

type BookingConfirmed struct {
	BookingID BookingID         `json:"booking_id"`
	ListingID listing.ListingID `json:"listing_id"`
	At        time.Time         `json:"at"`
}

func (e BookingConfirmed) Name() string      { return "booking.confirmed" }
func (e BookingConfirmed) Aggregate() string { return string(e.BookingID) }

type BookingCancelled struct {
	BookingID BookingID         `json:"booking_id"`
	ListingID listing.ListingID `json:"listing_id"`
	At        time.Time         `json:"at"`
}

func (e BookingCancelled) Name() string      { return "booking.cancelled" }
func (e BookingCancelled) Aggregate() string { return string(e.BookingID) }

// EventRecorder accumulates events raised by an aggregate until the service
// layer drains them into the outbox.
type EventRecorder struct {
	pending []Event
}

func (r *EventRecorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

func (r *EventRecorder) PendingEvents() []Event {
	return r.pending
}

func (r *EventRecorder) ClearEvents() {
	r.pending = nil
}
