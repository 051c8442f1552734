package listing

import (
	"sort"
	"strings"
)

// SortMode orders catalog results.
type SortMode string

const (
	SortNewest    SortMode = "Newest"
	SortPriceLow  SortMode = "PriceLow"
	SortPriceHigh SortMode = "PriceHigh"
)

// SearchParams are the catalog filters. Zero values mean "any"; they map 1:1
// onto the search URL's query parameters (state, maxPrice, hookups, ...).
type SearchParams struct {
	State         string
	MaxPrice      int64
	Hookups       Hookups
	PricingPeriod PricingPeriod
	Query         string

	// Amenity requirements; only true values constrain.
	Wifi        bool
	PetsAllowed bool
	Showers     bool
	Bathrooms   bool

	Sort SortMode
}

// Normalized trims and upper/lower-cases the free-form filter fields.
func (p SearchParams) Normalized() SearchParams {
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
	if len(p.State) > 2 {
		p.State = p.State[:2]
	}
	p.Query = strings.ToLower(strings.TrimSpace(p.Query))
	if p.MaxPrice < 0 {
		p.MaxPrice = 0
	}
	switch p.Sort {
	case SortPriceLow, SortPriceHigh:
	default:
		p.Sort = SortNewest
	}
	return p
}

// Matches applies the filters to one listing. Params must be normalized.
func (p SearchParams) Matches(l *Listing) bool {
	if p.State != "" && l.State != p.State {
		return false
	}
	if p.MaxPrice > 0 && !(l.Price > 0 && l.Price <= p.MaxPrice) {
		return false
	}
	if p.Hookups != "" && l.Hookups != p.Hookups {
		return false
	}
	if p.PricingPeriod != "" && l.PricingPeriod != p.PricingPeriod {
		return false
	}
	if p.Wifi && !l.Amenities.Wifi {
		return false
	}
	if p.PetsAllowed && !l.Amenities.PetsAllowed {
		return false
	}
	if p.Showers && !l.Amenities.Showers {
		return false
	}
	if p.Bathrooms && !l.Amenities.Bathrooms {
		return false
	}
	if p.Query != "" {
		hay := strings.ToLower(l.Title + " " + l.City + " " + l.State)
		if !strings.Contains(hay, p.Query) {
			return false
		}
	}
	return true
}

// SortListings orders items in place. Newest falls back to CreatedAt
// descending; price sorts push unknown (zero) prices last.
func SortListings(items []*Listing, mode SortMode) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return priceRank(items[i].Price) < priceRank(items[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

func priceRank(price int64) int64 {
	if price <= 0 {
		return 1<<62 - 1
	}
	return price
}
