package dto

import (
	"fmt"
	"time"

	"github.com/Beto956/rvnb/internal/app/services/bookings"
	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

// BookingResponse is the wire shape of one booking.
type BookingResponse struct {
	ID             string `json:"id"`
	ListingID      string `json:"listing_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	StayType       string `json:"stay_type"`
	Nights         int    `json:"nights"`
	EstimatedTotal int64  `json:"estimated_total"`
	Note           string `json:"note,omitempty"`
	GuestName      string `json:"guest_name,omitempty"`
	GuestEmail     string `json:"guest_email,omitempty"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
}

func MapBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             string(b.ID),
		ListingID:      string(b.ListingID),
		CheckIn:        dates.Key(b.CheckIn),
		CheckOut:       dates.Key(b.CheckOut),
		StayType:       string(b.StayType),
		Nights:         b.Nights,
		EstimatedTotal: b.EstimatedTotal,
		Note:           b.Note,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.UnixMilli(),
	}
}

func MapBookings(items []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, MapBooking(b))
	}
	return out
}

// HostBookingResponse joins a booking with its listing title for list views.
type HostBookingResponse struct {
	BookingResponse
	ListingTitle string `json:"listing_title"`
}

func MapHostBookings(items []bookings.HostBooking) []HostBookingResponse {
	out := make([]HostBookingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, HostBookingResponse{
			BookingResponse: MapBooking(item.Booking),
			ListingTitle:    item.ListingTitle,
		})
	}
	return out
}

func unixMilliOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func formatPrice(amount int64, unit string) string {
	return fmt.Sprintf("$%d/%s", amount, unit)
}
