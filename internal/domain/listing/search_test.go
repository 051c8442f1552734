package listing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/domain/listing"
)

func catalogListing(t *testing.T, id, title, city, state string, price int64, hookups listing.Hookups, created time.Time) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(listing.CreateParams{
		ID:      listing.ListingID(id),
		Host:    "host-1",
		Title:   title,
		City:    city,
		State:   state,
		Price:   price,
		Hookups: hookups,
		Now:     created,
	})
	require.NoError(t, err)
	return l
}

func TestSearchMatches(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	l := catalogListing(t, "lst-1", "Riverside Spot", "Austin", "TX", 45, listing.HookupsFull, base)
	l.Amenities.Wifi = true

	tests := []struct {
		name   string
		params listing.SearchParams
		want   bool
	}{
		{name: "no filters", params: listing.SearchParams{}, want: true},
		{name: "state match", params: listing.SearchParams{State: "tx"}, want: true},
		{name: "state miss", params: listing.SearchParams{State: "OR"}, want: false},
		{name: "price under cap", params: listing.SearchParams{MaxPrice: 50}, want: true},
		{name: "price over cap", params: listing.SearchParams{MaxPrice: 40}, want: false},
		{name: "hookups match", params: listing.SearchParams{Hookups: listing.HookupsFull}, want: true},
		{name: "hookups miss", params: listing.SearchParams{Hookups: listing.HookupsPartial}, want: false},
		{name: "wifi required and present", params: listing.SearchParams{Wifi: true}, want: true},
		{name: "showers required and absent", params: listing.SearchParams{Showers: true}, want: false},
		{name: "text in title", params: listing.SearchParams{Query: "riverside"}, want: true},
		{name: "text in city", params: listing.SearchParams{Query: "austin"}, want: true},
		{name: "text miss", params: listing.SearchParams{Query: "desert"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Normalized().Matches(l))
		})
	}
}

func TestSearchUnpricedListingNeverMatchesPriceCap(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	free := catalogListing(t, "lst-0", "Mystery Spot", "Reno", "NV", 0, listing.HookupsNone, base)
	params := listing.SearchParams{MaxPrice: 1000}.Normalized()
	assert.False(t, params.Matches(free))
}

func TestSortListings(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	cheap := catalogListing(t, "lst-cheap", "Cheap", "Reno", "NV", 20, listing.HookupsNone, base)
	pricey := catalogListing(t, "lst-pricey", "Pricey", "Reno", "NV", 90, listing.HookupsNone, base.Add(24*time.Hour))
	unpriced := catalogListing(t, "lst-unpriced", "Unpriced", "Reno", "NV", 0, listing.HookupsNone, base.Add(48*time.Hour))

	items := []*listing.Listing{pricey, unpriced, cheap}
	listing.SortListings(items, listing.SortPriceLow)
	assert.Equal(t, listing.ListingID("lst-cheap"), items[0].ID)
	assert.Equal(t, listing.ListingID("lst-pricey"), items[1].ID)
	assert.Equal(t, listing.ListingID("lst-unpriced"), items[2].ID, "unknown price sorts last")

	items = []*listing.Listing{cheap, unpriced, pricey}
	listing.SortListings(items, listing.SortPriceHigh)
	assert.Equal(t, listing.ListingID("lst-pricey"), items[0].ID)

	items = []*listing.Listing{cheap, pricey, unpriced}
	listing.SortListings(items, listing.SortNewest)
	assert.Equal(t, listing.ListingID("lst-unpriced"), items[0].ID)
}

func TestNormalizedClampsState(t *testing.T) {
	params := listing.SearchParams{State: " texas ", MaxPrice: -4, Sort: "bogus"}.Normalized()
	assert.Equal(t, "TE", params.State)
	assert.Equal(t, int64(0), params.MaxPrice)
	assert.Equal(t, listing.SortNewest, params.Sort)
}
