package listing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/domain/listing"
)

func validCreateParams() listing.CreateParams {
	return listing.CreateParams{
		ID:            "lst-1",
		Host:          "host-1",
		Title:         "Shady Pull-Through",
		City:          "Bend",
		State:         "or",
		Price:         40,
		PricingPeriod: listing.PeriodNight,
		MaxLengthFt:   35,
		Hookups:       listing.HookupsFull,
		Now:           time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewListing(t *testing.T) {
	l, err := listing.NewListing(validCreateParams())
	require.NoError(t, err)
	assert.Equal(t, "OR", l.State)
	assert.Equal(t, listing.HookupsFull, l.Hookups)
	assert.Equal(t, l.CreatedAt, l.UpdatedAt)
}

func TestNewListingValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*listing.CreateParams)
		wantErr error
	}{
		{name: "missing title", mutate: func(p *listing.CreateParams) { p.Title = "  " }, wantErr: listing.ErrTitleRequired},
		{name: "missing city", mutate: func(p *listing.CreateParams) { p.City = "" }, wantErr: listing.ErrCityRequired},
		{name: "bad state", mutate: func(p *listing.CreateParams) { p.State = "Oregon" }, wantErr: listing.ErrStateCode},
		{name: "negative price", mutate: func(p *listing.CreateParams) { p.Price = -1 }, wantErr: listing.ErrNegativePrice},
		{name: "negative length", mutate: func(p *listing.CreateParams) { p.MaxLengthFt = -5 }, wantErr: listing.ErrNegativeLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateParams()
			tt.mutate(&params)
			_, err := listing.NewListing(params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAttributes(t *testing.T) {
	l, err := listing.NewListing(validCreateParams())
	require.NoError(t, err)

	later := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	err = l.UpdateAttributes(listing.UpdateParams{
		Title:       "Shady Pull-Through (Updated)",
		City:        "Bend",
		State:       "OR",
		Price:       55,
		MaxLengthFt: 40,
		Hookups:     listing.HookupsPartial,
		Now:         later,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), l.Price)
	assert.Equal(t, listing.HookupsPartial, l.Hookups)
	assert.Equal(t, later, l.UpdatedAt)

	err = l.UpdateAttributes(listing.UpdateParams{Title: "", City: "Bend", State: "OR"})
	assert.ErrorIs(t, err, listing.ErrTitleRequired)
}

func TestOwnedBy(t *testing.T) {
	l, err := listing.NewListing(validCreateParams())
	require.NoError(t, err)
	assert.True(t, l.OwnedBy("host-1"))
	assert.False(t, l.OwnedBy("host-2"))

	var orphan listing.Listing
	assert.False(t, orphan.OwnedBy(""), "unowned listing matches nobody")
}

func TestAddPhoto(t *testing.T) {
	l, err := listing.NewListing(validCreateParams())
	require.NoError(t, err)
	now := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	l.AddPhoto("https://cdn.example.com/p1.jpg", now)
	l.AddPhoto("   ", now)
	assert.Equal(t, []string{"https://cdn.example.com/p1.jpg"}, l.Photos)
}

func TestNormalizeStateCode(t *testing.T) {
	got, err := listing.NormalizeStateCode(" tx ")
	require.NoError(t, err)
	assert.Equal(t, "TX", got)

	_, err = listing.NormalizeStateCode("T")
	assert.ErrorIs(t, err, listing.ErrStateCode)
	_, err = listing.NormalizeStateCode("Texas")
	assert.ErrorIs(t, err, listing.ErrStateCode)
}
