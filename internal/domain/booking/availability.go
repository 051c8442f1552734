package booking

import (
	"time"

	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

// All range math here treats a booking as the half-open day interval
// [CheckIn, CheckOut): check-in day occupied, check-out day free. Back-to-back
// stays that share only the boundary date therefore never conflict.

// CoversDay reports whether day falls inside the booking's range. Time of day
// is ignored on both sides.
func (b *Booking) CoversDay(day time.Time) bool {
	d := dates.Midnight(day)
	return !d.Before(dates.Midnight(b.CheckIn)) && d.Before(dates.Midnight(b.CheckOut))
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict scans existing bookings for one whose range overlaps the
// candidate. Cancelled bookings never block. Assumes checkOut > checkIn was
// validated by the caller. Returns nil when the range is free.
func FindConflict(checkIn, checkOut time.Time, existing []*Booking) *Booking {
	start := dates.Midnight(checkIn)
	end := dates.Midnight(checkOut)
	for _, b := range existing {
		if b == nil || b.Status == StatusCancelled {
			continue
		}
		if Overlaps(start, end, dates.Midnight(b.CheckIn), dates.Midnight(b.CheckOut)) {
			return b
		}
	}
	return nil
}

// CheckAvailability returns ErrDatesUnavailable when the candidate range
// collides with any active booking.
func CheckAvailability(checkIn, checkOut time.Time, existing []*Booking) error {
	if FindConflict(checkIn, checkOut, existing) != nil {
		return ErrDatesUnavailable
	}
	return nil
}
