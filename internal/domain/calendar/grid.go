package calendar

import (
	"sort"
	"time"

	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

// GridDay is one slot of the month grid.
type GridDay struct {
	Date    time.Time
	Key     string
	InMonth bool
	Today   bool
}

// MonthGrid lays out the calendar for the month containing anchor: from the
// Sunday on/before the first of the month through the Saturday on/after the
// last day. The result is always whole weeks starting on Sunday. A rebuild is
// a pure function of (anchor, today); no state carries over.
func MonthGrid(anchor, today time.Time) []GridDay {
	monthStart := dates.StartOfMonth(anchor)
	monthEnd := dates.EndOfMonth(anchor)

	start := dates.AddDays(monthStart, -int(monthStart.Weekday()))
	end := dates.AddDays(monthEnd, int(time.Saturday-monthEnd.Weekday()))

	var out []GridDay
	for cur := start; !cur.After(end); cur = dates.AddDays(cur, 1) {
		out = append(out, GridDay{
			Date:    cur,
			Key:     dates.Key(cur),
			InMonth: cur.Month() == monthStart.Month(),
			Today:   dates.SameDay(cur, today),
		})
	}
	return out
}

// DayCell is a grid day annotated with one listing's bookings and metadata.
type DayCell struct {
	GridDay
	Bookings []*booking.Booking
	Meta     *DayMeta
}

// BuildListingMonth annotates the month grid for one listing. Bookings
// covering a day appear sorted by check-in ascending; metas is keyed by
// MetaKey as returned by the repository.
func BuildListingMonth(listingID listing.ListingID, anchor, today time.Time, bookings []*booking.Booking, metas map[string]DayMeta) []DayCell {
	grid := MonthGrid(anchor, today)
	cells := make([]DayCell, 0, len(grid))
	for _, day := range grid {
		cell := DayCell{GridDay: day}
		for _, b := range bookings {
			if b != nil && b.ListingID == listingID && b.CoversDay(day.Date) {
				cell.Bookings = append(cell.Bookings, b)
			}
		}
		sort.SliceStable(cell.Bookings, func(i, j int) bool {
			return cell.Bookings[i].CheckIn.Before(cell.Bookings[j].CheckIn)
		})
		if m, ok := metas[MetaKey(listingID, day.Key)]; ok {
			meta := m
			cell.Meta = &meta
		}
		cells = append(cells, cell)
	}
	return cells
}

// MaxVisibleBookings is the display truncation applied per day cell before
// collapsing into a "+N more" summary. Data is never truncated.
const MaxVisibleBookings = 2

// VisibleBookings splits a cell's bookings into the shown prefix and the
// count summarized as "+N more".
func VisibleBookings(cell DayCell) (shown []*booking.Booking, extra int) {
	if len(cell.Bookings) <= MaxVisibleBookings {
		return cell.Bookings, 0
	}
	return cell.Bookings[:MaxVisibleBookings], len(cell.Bookings) - MaxVisibleBookings
}
