package listing

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrTitleRequired  = errors.New("listing: title is required")
	ErrCityRequired   = errors.New("listing: city is required")
	ErrStateCode      = errors.New("listing: state must be a 2-letter code")
	ErrNegativePrice  = errors.New("listing: price must be non-negative")
	ErrNegativeLength = errors.New("listing: max length must be non-negative")
	ErrNotOwner       = errors.New("listing: actor does not own this listing")
	ErrNotFound       = errors.New("listing: not found")
)

type ListingID string
type HostID string

// Hookups is the utility connection level offered at a spot.
type Hookups string

const (
	HookupsFull    Hookups = "Full"
	HookupsPartial Hookups = "Partial"
	HookupsNone    Hookups = "None"
)

// PricingPeriod is the unit the listed price applies to.
type PricingPeriod string

const (
	PeriodNight   PricingPeriod = "Night"
	PeriodWeekly  PricingPeriod = "Weekly"
	PeriodMonthly PricingPeriod = "Monthly"
)

// PowerService is the electrical hookup available at the spot.
type PowerService string

const (
	PowerNone PowerService = "None"
	Power30A  PowerService = "30A"
	Power50A  PowerService = "50A"
	PowerDual PowerService = "30A/50A"
)

type WaterService string

const (
	WaterNone WaterService = "None"
	WaterYes  WaterService = "Yes"
)

type SewerService string

const (
	SewerNone SewerService = "None"
	SewerYes  SewerService = "Yes"
	SewerDump SewerService = "Dump station"
)

type LaundryService string

const (
	LaundryNone        LaundryService = "None"
	LaundryWasherDryer LaundryService = "Washer/Dryer"
	LaundryWashFold    LaundryService = "Wash & Fold"
	LaundryBoth        LaundryService = "Both"
)

// Amenities are the boolean feature flags a host can set on a listing.
type Amenities struct {
	Wifi            bool
	PetsAllowed     bool
	FirePit         bool
	PicnicTable     bool
	PullThrough     bool
	TrashPickup     bool
	SecurityCameras bool
	Gym             bool
	Bathrooms       bool
	Showers         bool
}

// Listing is a bookable RV/land spot owned by a host. Prices are whole
// dollars, matching what the store has always held.
type Listing struct {
	ID                ListingID
	Host              HostID
	Title             string
	City              string
	State             string
	Price             int64
	PricingPeriod     PricingPeriod
	MaxLengthFt       int
	Hookups           Hookups
	Power             PowerService
	Water             WaterService
	Sewer             SewerService
	Laundry           LaundryService
	Amenities         Amenities
	Description       string
	NearbyAttractions string
	Photos            []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Repository interface {
	ByID(ctx context.Context, id ListingID) (*Listing, error)
	ByHost(ctx context.Context, host HostID) ([]*Listing, error)
	Save(ctx context.Context, l *Listing) error
	Search(ctx context.Context, params SearchParams) ([]*Listing, error)
}

type CreateParams struct {
	ID                ListingID
	Host              HostID
	Title             string
	City              string
	State             string
	Price             int64
	PricingPeriod     PricingPeriod
	MaxLengthFt       int
	Hookups           Hookups
	Power             PowerService
	Water             WaterService
	Sewer             SewerService
	Laundry           LaundryService
	Amenities         Amenities
	Description       string
	NearbyAttractions string
	Photos            []string
	Now               time.Time
}

func NewListing(params CreateParams) (*Listing, error) {
	if strings.TrimSpace(string(params.ID)) == "" {
		return nil, errors.New("listing: id is required")
	}
	if strings.TrimSpace(string(params.Host)) == "" {
		return nil, errors.New("listing: host is required")
	}
	state, err := NormalizeStateCode(params.State)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(params.City) == "" {
		return nil, ErrCityRequired
	}
	if params.Price < 0 {
		return nil, ErrNegativePrice
	}
	if params.MaxLengthFt < 0 {
		return nil, ErrNegativeLength
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	return &Listing{
		ID:                params.ID,
		Host:              params.Host,
		Title:             strings.TrimSpace(params.Title),
		City:              strings.TrimSpace(params.City),
		State:             state,
		Price:             params.Price,
		PricingPeriod:     SafePricingPeriod(string(params.PricingPeriod)),
		MaxLengthFt:       params.MaxLengthFt,
		Hookups:           SafeHookups(string(params.Hookups)),
		Power:             SafePower(string(params.Power)),
		Water:             SafeWater(string(params.Water)),
		Sewer:             SafeSewer(string(params.Sewer)),
		Laundry:           SafeLaundry(string(params.Laundry)),
		Amenities:         params.Amenities,
		Description:       strings.TrimSpace(params.Description),
		NearbyAttractions: strings.TrimSpace(params.NearbyAttractions),
		Photos:            append([]string(nil), params.Photos...),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

type UpdateParams struct {
	Title             string
	City              string
	State             string
	Price             int64
	PricingPeriod     PricingPeriod
	MaxLengthFt       int
	Hookups           Hookups
	Power             PowerService
	Water             WaterService
	Sewer             SewerService
	Laundry           LaundryService
	Amenities         Amenities
	Description       string
	NearbyAttractions string
	Now               time.Time
}

// UpdateAttributes replaces the host-editable fields. Ownership is checked by
// the caller; the aggregate only enforces field validity.
func (l *Listing) UpdateAttributes(params UpdateParams) error {
	state, err := NormalizeStateCode(params.State)
	if err != nil {
		return err
	}
	if strings.TrimSpace(params.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(params.City) == "" {
		return ErrCityRequired
	}
	if params.Price < 0 {
		return ErrNegativePrice
	}
	if params.MaxLengthFt < 0 {
		return ErrNegativeLength
	}
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	l.Title = strings.TrimSpace(params.Title)
	l.City = strings.TrimSpace(params.City)
	l.State = state
	l.Price = params.Price
	l.PricingPeriod = SafePricingPeriod(string(params.PricingPeriod))
	l.MaxLengthFt = params.MaxLengthFt
	l.Hookups = SafeHookups(string(params.Hookups))
	l.Power = SafePower(string(params.Power))
	l.Water = SafeWater(string(params.Water))
	l.Sewer = SafeSewer(string(params.Sewer))
	l.Laundry = SafeLaundry(string(params.Laundry))
	l.Amenities = params.Amenities
	l.Description = strings.TrimSpace(params.Description)
	l.NearbyAttractions = strings.TrimSpace(params.NearbyAttractions)
	l.UpdatedAt = now.UTC()
	return nil
}

// AddPhoto appends an uploaded photo URL.
func (l *Listing) AddPhoto(url string, now time.Time) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	l.Photos = append(l.Photos, url)
	l.UpdatedAt = now.UTC()
}

// OwnedBy reports whether host owns the listing.
func (l *Listing) OwnedBy(host HostID) bool {
	return l.Host != "" && l.Host == host
}

// NormalizeStateCode upper-cases and validates a 2-letter US state code.
func NormalizeStateCode(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return "", ErrStateCode
	}
	return s, nil
}
