// Package calendar models the host calendar: per-day host-authored metadata
// and the month grid the calendar page renders.
package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

var ErrListingRequired = errors.New("calendar: listing id is required")

// Signal is a host-facing demand marker for a day.
type Signal string

const (
	SignalNone        Signal = "none"
	SignalHigh        Signal = "high"
	SignalMaintenance Signal = "maintenance"
	SignalPrivate     Signal = "private"
	SignalFlex        Signal = "flex"
)

// ParseSignal coerces a raw signal string; anything unknown reads as none.
func ParseSignal(raw string) Signal {
	switch Signal(strings.ToLower(strings.TrimSpace(raw))) {
	case SignalHigh:
		return SignalHigh
	case SignalMaintenance:
		return SignalMaintenance
	case SignalPrivate:
		return SignalPrivate
	case SignalFlex:
		return SignalFlex
	default:
		return SignalNone
	}
}

// Label is the display name shown in the day inspector.
func (s Signal) Label() string {
	switch s {
	case SignalHigh:
		return "High Demand"
	case SignalMaintenance:
		return "Maintenance"
	case SignalPrivate:
		return "Private Use"
	case SignalFlex:
		return "Flexible"
	default:
		return "None"
	}
}

// DayMeta is the host-authored override for one (listing, day) pair. Day is
// the canonical YYYY-MM-DD key. Identity is the composite MetaKey; records are
// sparse and a missing record reads as the zero meta.
type DayMeta struct {
	ListingID   listing.ListingID
	Day         string
	Blocked     bool
	BlockReason string
	Signal      Signal
	Note        string
	UpdatedAt   time.Time
}

// MetaKey builds the composite identity for a (listing, day) pair.
func MetaKey(listingID listing.ListingID, day string) string {
	return string(listingID) + "__" + day
}

func (m DayMeta) Key() string {
	return MetaKey(m.ListingID, m.Day)
}

// Empty reports whether the meta carries no host input at all; saving an
// empty meta effectively clears the day.
func (m DayMeta) Empty() bool {
	return !m.Blocked && m.Signal == SignalNone && m.Note == ""
}

// NewDayMeta validates and normalizes one save from the day inspector. The
// record replaces any previous one wholesale: no field survives from a stale
// version. A block reason only has meaning while blocked, so it is discarded
// whenever blocked is false regardless of what was typed.
func NewDayMeta(listingID listing.ListingID, day string, blocked bool, reason string, signal Signal, note string, now time.Time) (DayMeta, error) {
	if strings.TrimSpace(string(listingID)) == "" {
		return DayMeta{}, ErrListingRequired
	}
	parsed, err := dates.ParseKey(day)
	if err != nil {
		return DayMeta{}, err
	}
	if !blocked {
		reason = ""
	}
	return DayMeta{
		ListingID:   listingID,
		Day:         dates.Key(parsed),
		Blocked:     blocked,
		BlockReason: strings.TrimSpace(reason),
		Signal:      ParseSignal(string(signal)),
		Note:        strings.TrimSpace(note),
		UpdatedAt:   now.UTC(),
	}, nil
}

type MetaRepository interface {
	Get(ctx context.Context, listingID listing.ListingID, day string) (DayMeta, bool, error)
	// ByListingsInRange returns every record for the given listings whose day
	// key falls in [from, to], keyed by MetaKey.
	ByListingsInRange(ctx context.Context, listingIDs []listing.ListingID, from, to string) (map[string]DayMeta, error)
	Save(ctx context.Context, meta DayMeta) error
}
