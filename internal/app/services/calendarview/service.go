// Package calendarview assembles the host calendar page: the month grid for
// one listing with bookings and day metadata attached, plus day inspector
// saves.
package calendarview

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

var ErrBadMonth = errors.New("calendarview: month must be YYYY-MM")

type Service struct {
	Listings domainlisting.Repository
	Bookings booking.Repository
	Meta     calendar.MetaRepository
	Logger   *slog.Logger
}

// MonthView is one rendered host calendar month.
type MonthView struct {
	Listing *domainlisting.Listing
	Anchor  time.Time
	Cells   []calendar.DayCell
}

// ParseMonth reads a YYYY-MM query value; empty means the current month. The
// anchor is parsed in local time so grid days compare against the local
// midnights that day keys produce.
func ParseMonth(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return dates.StartOfMonth(now), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, time.Local)
	if err != nil {
		return time.Time{}, ErrBadMonth
	}
	return parsed, nil
}

// Month builds the calendar for one of the host's listings. Ownership is
// enforced; bookings and metadata outside the visible grid are not fetched.
func (s *Service) Month(ctx context.Context, host domainlisting.HostID, listingID domainlisting.ListingID, anchor time.Time) (*MonthView, error) {
	if err := s.ensureDependencies(); err != nil {
		return nil, err
	}
	l, err := s.Listings.ByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(host) {
		return nil, domainlisting.ErrNotOwner
	}
	items, err := s.Bookings.ByListing(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	grid := calendar.MonthGrid(anchor, now)
	from, to := grid[0].Key, grid[len(grid)-1].Key
	metas, err := s.Meta.ByListingsInRange(ctx, []domainlisting.ListingID{l.ID}, from, to)
	if err != nil {
		return nil, err
	}
	return &MonthView{
		Listing: l,
		Anchor:  dates.StartOfMonth(anchor),
		Cells:   calendar.BuildListingMonth(l.ID, anchor, now, items, metas),
	}, nil
}

type SaveDayParams struct {
	ListingID   domainlisting.ListingID
	Day         string
	Blocked     bool
	BlockReason string
	Signal      string
	Note        string
}

// SaveDay writes one day inspector save. The record replaces whatever was
// stored for that (listing, day) pair.
func (s *Service) SaveDay(ctx context.Context, host domainlisting.HostID, params SaveDayParams) (calendar.DayMeta, error) {
	if err := s.ensureDependencies(); err != nil {
		return calendar.DayMeta{}, err
	}
	l, err := s.Listings.ByID(ctx, params.ListingID)
	if err != nil {
		return calendar.DayMeta{}, err
	}
	if !l.OwnedBy(host) {
		return calendar.DayMeta{}, domainlisting.ErrNotOwner
	}
	meta, err := calendar.NewDayMeta(l.ID, params.Day, params.Blocked, params.BlockReason,
		calendar.ParseSignal(params.Signal), params.Note, time.Now())
	if err != nil {
		return calendar.DayMeta{}, err
	}
	if err := s.Meta.Save(ctx, meta); err != nil {
		return calendar.DayMeta{}, err
	}
	if s.Logger != nil {
		s.Logger.Info("day meta saved", "listing_id", l.ID, "day", meta.Day, "blocked", meta.Blocked)
	}
	return meta, nil
}

func (s *Service) ensureDependencies() error {
	switch {
	case s.Listings == nil:
		return errors.New("calendarview: listing repository required")
	case s.Bookings == nil:
		return errors.New("calendarview: booking repository required")
	case s.Meta == nil:
		return errors.New("calendarview: meta repository required")
	default:
		return nil
	}
}
