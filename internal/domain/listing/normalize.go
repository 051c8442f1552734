package listing

import (
	"strings"
	"time"
)

// The listing schema changed once in production: early documents carried a
// single pricePerNight number, later ones a price plus pricingType pair. Both
// shapes must keep rendering without a migration, so the raw document is
// modeled here as an explicit union and normalized exactly once at the store
// boundary. Downstream code never touches the raw fields.

// PriceSchema tags which historical shape a document carries.
type PriceSchema int

const (
	PriceSchemaNone PriceSchema = iota
	PriceSchemaLegacy
	PriceSchemaCurrent
)

// PriceFields are the raw pricing fields of a stored listing document.
// Nil pointers mean the field is absent.
type PriceFields struct {
	PricePerNight *int64
	Price         *int64
	PricingType   string
}

// Schema classifies the document. The legacy field wins when both are set,
// matching how the web frontend always rendered these records.
func (f PriceFields) Schema() PriceSchema {
	switch {
	case f.PricePerNight != nil:
		return PriceSchemaLegacy
	case f.Price != nil:
		return PriceSchemaCurrent
	default:
		return PriceSchemaNone
	}
}

// ContactHostLabel is shown when a listing has no usable price at all.
const ContactHostLabel = "Contact host"

// ResolvedPrice is the single display form both schemas normalize into.
type ResolvedPrice struct {
	Value int64
	Known bool
	Label string
}

// ResolvePrice reconciles the two historical pricing shapes. Legacy
// pricePerNight is always per night; the current shape derives its label from
// pricingType; neither present yields the "Contact host" sentinel.
// Idempotent by construction: it reads only the raw fields.
func ResolvePrice(f PriceFields) ResolvedPrice {
	switch f.Schema() {
	case PriceSchemaLegacy:
		return ResolvedPrice{Value: *f.PricePerNight, Known: true, Label: "night"}
	case PriceSchemaCurrent:
		return ResolvedPrice{Value: *f.Price, Known: true, Label: PeriodLabel(f.PricingType)}
	default:
		return ResolvedPrice{Label: ContactHostLabel}
	}
}

// PeriodLabel normalizes a raw pricingType into a display label.
// Case-insensitive; "pernight" and "night" collapse to "night", the known
// period names map to their unit, anything else passes through lower-cased.
func PeriodLabel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pernight", "night":
		return "night"
	case "weekly", "week":
		return "week"
	case "monthly", "month":
		return "month"
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

// Doc is the schema-flexible wire shape of a listing document. Every field is
// optional; unknown or missing values fall back to safe defaults the same way
// the original store consumers did.
type Doc struct {
	Host              string
	Title             string
	City              string
	State             string
	PricePerNight     *int64
	Price             *int64
	PricingType       string
	MaxLengthFt       int
	Hookups           string
	Power             string
	Water             string
	Sewer             string
	Laundry           string
	Description       string
	NearbyAttractions string
	Wifi              bool
	PetsAllowed       bool
	FirePit           bool
	PicnicTable       bool
	PullThrough       bool
	TrashPickup       bool
	SecurityCameras   bool
	Gym               bool
	Bathrooms         bool
	Showers           bool
	Photos            []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FromDoc normalizes a raw document into a Listing. Price resolution applies
// the dual-schema rule; enum-like strings are coerced to their typed values.
func FromDoc(id ListingID, d Doc) *Listing {
	resolved := ResolvePrice(PriceFields{
		PricePerNight: d.PricePerNight,
		Price:         d.Price,
		PricingType:   d.PricingType,
	})
	period := PeriodNight
	if d.PricePerNight == nil {
		period = SafePricingPeriod(d.PricingType)
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "(Untitled Listing)"
	}

	return &Listing{
		ID:                id,
		Host:              HostID(strings.TrimSpace(d.Host)),
		Title:             title,
		City:              strings.TrimSpace(d.City),
		State:             strings.ToUpper(strings.TrimSpace(d.State)),
		Price:             resolved.Value,
		PricingPeriod:     period,
		MaxLengthFt:       d.MaxLengthFt,
		Hookups:           SafeHookups(d.Hookups),
		Power:             SafePower(d.Power),
		Water:             SafeWater(d.Water),
		Sewer:             SafeSewer(d.Sewer),
		Laundry:           SafeLaundry(d.Laundry),
		Amenities: Amenities{
			Wifi:            d.Wifi,
			PetsAllowed:     d.PetsAllowed,
			FirePit:         d.FirePit,
			PicnicTable:     d.PicnicTable,
			PullThrough:     d.PullThrough,
			TrashPickup:     d.TrashPickup,
			SecurityCameras: d.SecurityCameras,
			Gym:             d.Gym,
			Bathrooms:       d.Bathrooms,
			Showers:         d.Showers,
		},
		Description:       strings.TrimSpace(d.Description),
		NearbyAttractions: strings.TrimSpace(d.NearbyAttractions),
		Photos:            append([]string(nil), d.Photos...),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ResolvedPrice returns the display price for an already-normalized listing.
func (l *Listing) ResolvedPrice() ResolvedPrice {
	if l.Price <= 0 {
		return ResolvedPrice{Label: ContactHostLabel}
	}
	return ResolvedPrice{Value: l.Price, Known: true, Label: PeriodLabel(string(l.PricingPeriod))}
}

// SafeHookups coerces a raw hookups string; anything unknown is None.
func SafeHookups(raw string) Hookups {
	switch Hookups(strings.TrimSpace(raw)) {
	case HookupsFull:
		return HookupsFull
	case HookupsPartial:
		return HookupsPartial
	default:
		return HookupsNone
	}
}

// SafePricingPeriod coerces a raw pricingType; anything unknown is Night.
func SafePricingPeriod(raw string) PricingPeriod {
	switch PricingPeriod(strings.TrimSpace(raw)) {
	case PeriodWeekly:
		return PeriodWeekly
	case PeriodMonthly:
		return PeriodMonthly
	default:
		return PeriodNight
	}
}

func SafePower(raw string) PowerService {
	switch PowerService(strings.TrimSpace(raw)) {
	case Power30A:
		return Power30A
	case Power50A:
		return Power50A
	case PowerDual:
		return PowerDual
	default:
		return PowerNone
	}
}

func SafeWater(raw string) WaterService {
	if WaterService(strings.TrimSpace(raw)) == WaterYes {
		return WaterYes
	}
	return WaterNone
}

func SafeSewer(raw string) SewerService {
	switch SewerService(strings.TrimSpace(raw)) {
	case SewerYes:
		return SewerYes
	case SewerDump:
		return SewerDump
	default:
		return SewerNone
	}
}

func SafeLaundry(raw string) LaundryService {
	switch LaundryService(strings.TrimSpace(raw)) {
	case LaundryWasherDryer:
		return LaundryWasherDryer
	case LaundryWashFold:
		return LaundryWashFold
	case LaundryBoth:
		return LaundryBoth
	default:
		return LaundryNone
	}
}
