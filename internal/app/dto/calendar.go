package dto

import (
	"github.com/Beto956/rvnb/internal/app/services/calendarview"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

const monthLayout = "2006-01"

// CalendarDayMeta is the host-authored metadata of one day.
type CalendarDayMeta struct {
	Blocked     bool   `json:"blocked"`
	BlockReason string `json:"block_reason,omitempty"`
	Signal      string `json:"signal"`
	SignalLabel string `json:"signal_label"`
	Note        string `json:"note,omitempty"`
}

// CalendarDay is one grid cell. Bookings holds the visible prefix; MoreCount
// is the number collapsed behind it.
type CalendarDay struct {
	Date      string            `json:"date"`
	InMonth   bool              `json:"in_month"`
	Today     bool              `json:"today"`
	Bookings  []BookingResponse `json:"bookings"`
	MoreCount int               `json:"more_count,omitempty"`
	Meta      *CalendarDayMeta  `json:"meta,omitempty"`
}

// CalendarMonth is the rendered host calendar for one listing. PrevMonth and
// NextMonth are the month query values for the adjacent months.
type CalendarMonth struct {
	ListingID    string        `json:"listing_id"`
	ListingTitle string        `json:"listing_title"`
	Month        string        `json:"month"`
	PrevMonth    string        `json:"prev_month"`
	NextMonth    string        `json:"next_month"`
	Days         []CalendarDay `json:"days"`
}

func MapCalendarMonth(view *calendarview.MonthView) CalendarMonth {
	days := make([]CalendarDay, 0, len(view.Cells))
	for _, cell := range view.Cells {
		shown, extra := calendar.VisibleBookings(cell)
		day := CalendarDay{
			Date:      cell.Key,
			InMonth:   cell.InMonth,
			Today:     cell.Today,
			Bookings:  MapBookings(shown),
			MoreCount: extra,
		}
		if cell.Meta != nil {
			day.Meta = mapDayMeta(*cell.Meta)
		}
		days = append(days, day)
	}
	return CalendarMonth{
		ListingID:    string(view.Listing.ID),
		ListingTitle: view.Listing.Title,
		Month:        view.Anchor.Format(monthLayout),
		PrevMonth:    dates.AddMonths(view.Anchor, -1).Format(monthLayout),
		NextMonth:    dates.AddMonths(view.Anchor, 1).Format(monthLayout),
		Days:         days,
	}
}

func MapDayMeta(meta calendar.DayMeta) CalendarDayMeta {
	return *mapDayMeta(meta)
}

func mapDayMeta(meta calendar.DayMeta) *CalendarDayMeta {
	return &CalendarDayMeta{
		Blocked:     meta.Blocked,
		BlockReason: meta.BlockReason,
		Signal:      string(meta.Signal),
		SignalLabel: meta.Signal.Label(),
		Note:        meta.Note,
	}
}
