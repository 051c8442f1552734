package listings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
)

// PhotoStore persists uploaded listing photos and returns their public URL.
type PhotoStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}

type Service struct {
	Listings domainlisting.Repository
	Photos   PhotoStore
	Logger   *slog.Logger
}

// Catalog runs the public search.
func (s *Service) Catalog(ctx context.Context, params domainlisting.SearchParams) ([]*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	return s.Listings.Search(ctx, params)
}

func (s *Service) Detail(ctx context.Context, id domainlisting.ListingID) (*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	return s.Listings.ByID(ctx, id)
}

func (s *Service) ByHost(ctx context.Context, host domainlisting.HostID) ([]*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	return s.Listings.ByHost(ctx, host)
}

type CreateParams struct {
	Host              domainlisting.HostID
	Title             string
	City              string
	State             string
	Price             int64
	PricingPeriod     string
	MaxLengthFt       int
	Hookups           string
	Power             string
	Water             string
	Sewer             string
	Laundry           string
	Amenities         domainlisting.Amenities
	Description       string
	NearbyAttractions string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	l, err := domainlisting.NewListing(domainlisting.CreateParams{
		ID:                domainlisting.ListingID(uuid.NewString()),
		Host:              params.Host,
		Title:             params.Title,
		City:              params.City,
		State:             params.State,
		Price:             params.Price,
		PricingPeriod:     domainlisting.PricingPeriod(params.PricingPeriod),
		MaxLengthFt:       params.MaxLengthFt,
		Hookups:           domainlisting.Hookups(params.Hookups),
		Power:             domainlisting.PowerService(params.Power),
		Water:             domainlisting.WaterService(params.Water),
		Sewer:             domainlisting.SewerService(params.Sewer),
		Laundry:           domainlisting.LaundryService(params.Laundry),
		Amenities:         params.Amenities,
		Description:       params.Description,
		NearbyAttractions: params.NearbyAttractions,
		Now:               time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.Listings.Save(ctx, l); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("listing created", "listing_id", l.ID, "host_id", l.Host)
	}
	return l, nil
}

type UpdateParams struct {
	Title             string
	City              string
	State             string
	Price             int64
	PricingPeriod     string
	MaxLengthFt       int
	Hookups           string
	Power             string
	Water             string
	Sewer             string
	Laundry           string
	Amenities         domainlisting.Amenities
	Description       string
	NearbyAttractions string
}

func (s *Service) Update(ctx context.Context, host domainlisting.HostID, id domainlisting.ListingID, params UpdateParams) (*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	l, err := s.Listings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(host) {
		return nil, domainlisting.ErrNotOwner
	}
	err = l.UpdateAttributes(domainlisting.UpdateParams{
		Title:             params.Title,
		City:              params.City,
		State:             params.State,
		Price:             params.Price,
		PricingPeriod:     domainlisting.PricingPeriod(params.PricingPeriod),
		MaxLengthFt:       params.MaxLengthFt,
		Hookups:           domainlisting.Hookups(params.Hookups),
		Power:             domainlisting.PowerService(params.Power),
		Water:             domainlisting.WaterService(params.Water),
		Sewer:             domainlisting.SewerService(params.Sewer),
		Laundry:           domainlisting.LaundryService(params.Laundry),
		Amenities:         params.Amenities,
		Description:       params.Description,
		NearbyAttractions: params.NearbyAttractions,
		Now:               time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.Listings.Save(ctx, l); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("listing updated", "listing_id", l.ID)
	}
	return l, nil
}

// AttachPhoto uploads the content and appends its URL to the listing.
func (s *Service) AttachPhoto(ctx context.Context, host domainlisting.HostID, id domainlisting.ListingID, filename string, reader io.Reader, contentType string) (*domainlisting.Listing, error) {
	if s.Listings == nil {
		return nil, errors.New("listings: repository required")
	}
	if s.Photos == nil {
		return nil, errors.New("listings: photo store required")
	}
	l, err := s.Listings.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.OwnedBy(host) {
		return nil, domainlisting.ErrNotOwner
	}
	key := photoKey(id, filename)
	url, err := s.Photos.Upload(ctx, key, reader, contentType)
	if err != nil {
		return nil, err
	}
	l.AddPhoto(url, time.Now())
	if err := s.Listings.Save(ctx, l); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("listing photo attached", "listing_id", l.ID, "key", key)
	}
	return l, nil
}

func photoKey(id domainlisting.ListingID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("listings/%s/%s%s", id, uuid.NewString(), ext)
}
