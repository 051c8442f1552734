package dto

import (
	"github.com/Beto956/rvnb/internal/app/services/bookings"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
)

// ListingPrice is the normalized display price. Amount is omitted when the
// listing has no usable price; Display then carries the contact-host label.
type ListingPrice struct {
	Amount  *int64 `json:"amount,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Display string `json:"display"`
}

// ListingCard is the catalog search result shape.
type ListingCard struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	City     string       `json:"city"`
	State    string       `json:"state"`
	Price    ListingPrice `json:"price"`
	Hookups  string       `json:"hookups"`
	MaxLenFt int          `json:"max_length_ft"`
	Photo    string       `json:"photo,omitempty"`
}

// ListingAmenities mirrors the boolean feature flags.
type ListingAmenities struct {
	Wifi            bool `json:"wifi"`
	PetsAllowed     bool `json:"pets_allowed"`
	FirePit         bool `json:"fire_pit"`
	PicnicTable     bool `json:"picnic_table"`
	PullThrough     bool `json:"pull_through"`
	TrashPickup     bool `json:"trash_pickup"`
	SecurityCameras bool `json:"security_cameras"`
	Gym             bool `json:"gym"`
	Bathrooms       bool `json:"bathrooms"`
	Showers         bool `json:"showers"`
}

// ListingDetail is the full public listing shape.
type ListingDetail struct {
	ID                string           `json:"id"`
	HostID            string           `json:"host_id,omitempty"`
	Title             string           `json:"title"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	Price             ListingPrice     `json:"price"`
	PricingPeriod     string           `json:"pricing_period"`
	MaxLengthFt       int              `json:"max_length_ft"`
	Hookups           string           `json:"hookups"`
	Power             string           `json:"power"`
	Water             string           `json:"water"`
	Sewer             string           `json:"sewer"`
	Laundry           string           `json:"laundry"`
	Amenities         ListingAmenities `json:"amenities"`
	Description       string           `json:"description"`
	NearbyAttractions string           `json:"nearby_attractions,omitempty"`
	Photos            []string         `json:"photos"`
	CreatedAt         int64            `json:"created_at,omitempty"`
	UpdatedAt         int64            `json:"updated_at,omitempty"`
}

func MapListingPrice(l *domainlisting.Listing) ListingPrice {
	resolved := l.ResolvedPrice()
	if !resolved.Known {
		return ListingPrice{Display: resolved.Label}
	}
	amount := resolved.Value
	return ListingPrice{
		Amount:  &amount,
		Unit:    resolved.Label,
		Display: formatPrice(resolved.Value, resolved.Label),
	}
}

func MapListingCard(l *domainlisting.Listing) ListingCard {
	card := ListingCard{
		ID:       string(l.ID),
		Title:    l.Title,
		City:     l.City,
		State:    l.State,
		Price:    MapListingPrice(l),
		Hookups:  string(l.Hookups),
		MaxLenFt: l.MaxLengthFt,
	}
	if len(l.Photos) > 0 {
		card.Photo = l.Photos[0]
	}
	return card
}

func MapListingCards(items []*domainlisting.Listing) []ListingCard {
	out := make([]ListingCard, 0, len(items))
	for _, l := range items {
		out = append(out, MapListingCard(l))
	}
	return out
}

func MapListingDetail(l *domainlisting.Listing) ListingDetail {
	return ListingDetail{
		ID:            string(l.ID),
		HostID:        string(l.Host),
		Title:         l.Title,
		City:          l.City,
		State:         l.State,
		Price:         MapListingPrice(l),
		PricingPeriod: string(l.PricingPeriod),
		MaxLengthFt:   l.MaxLengthFt,
		Hookups:       string(l.Hookups),
		Power:         string(l.Power),
		Water:         string(l.Water),
		Sewer:         string(l.Sewer),
		Laundry:       string(l.Laundry),
		Amenities: ListingAmenities{
			Wifi:            l.Amenities.Wifi,
			PetsAllowed:     l.Amenities.PetsAllowed,
			FirePit:         l.Amenities.FirePit,
			PicnicTable:     l.Amenities.PicnicTable,
			PullThrough:     l.Amenities.PullThrough,
			TrashPickup:     l.Amenities.TrashPickup,
			SecurityCameras: l.Amenities.SecurityCameras,
			Gym:             l.Amenities.Gym,
			Bathrooms:       l.Amenities.Bathrooms,
			Showers:         l.Amenities.Showers,
		},
		Description:       l.Description,
		NearbyAttractions: l.NearbyAttractions,
		Photos:            append([]string(nil), l.Photos...),
		CreatedAt:         unixMilliOrZero(l.CreatedAt),
		UpdatedAt:         unixMilliOrZero(l.UpdatedAt),
	}
}

func MapListingDetails(items []*domainlisting.Listing) []ListingDetail {
	out := make([]ListingDetail, 0, len(items))
	for _, l := range items {
		out = append(out, MapListingDetail(l))
	}
	return out
}

// BookingCounts summarizes one listing's bookings for the host dashboard.
type BookingCounts struct {
	Requested int `json:"requested"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// HostListingItem is a host-owned listing with its booking tallies.
type HostListingItem struct {
	ListingDetail
	BookingCounts BookingCounts `json:"booking_counts"`
}

func MapHostListings(items []*domainlisting.Listing, counts map[domainlisting.ListingID]bookings.StatusCounts) []HostListingItem {
	out := make([]HostListingItem, 0, len(items))
	for _, l := range items {
		item := HostListingItem{ListingDetail: MapListingDetail(l)}
		if c, ok := counts[l.ID]; ok {
			item.BookingCounts = BookingCounts{
				Requested: c.Requested,
				Confirmed: c.Confirmed,
				Cancelled: c.Cancelled,
			}
		}
		out = append(out, item)
	}
	return out
}
