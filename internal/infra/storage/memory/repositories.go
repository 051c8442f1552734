// Package memory provides mutex-guarded in-memory implementations of the
// domain repositories, used for local development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Beto956/rvnb/internal/domain/booking"
	"github.com/Beto956/rvnb/internal/domain/calendar"
	"github.com/Beto956/rvnb/internal/domain/lead"
	"github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
)

type ListingRepository struct {
	mu    sync.RWMutex
	items map[listing.ListingID]*listing.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{items: make(map[listing.ListingID]*listing.Listing)}
}

func (r *ListingRepository) ByID(_ context.Context, id listing.ListingID) (*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.items[id]
	if !ok {
		return nil, listing.ErrNotFound
	}
	return cloneListing(l), nil
}

func (r *ListingRepository) ByHost(_ context.Context, host listing.HostID) ([]*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*listing.Listing
	for _, l := range r.items {
		if l.Host == host {
			out = append(out, cloneListing(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ListingRepository) Save(_ context.Context, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[l.ID] = cloneListing(l)
	return nil
}

func (r *ListingRepository) Search(_ context.Context, params listing.SearchParams) ([]*listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	norm := params.Normalized()
	var out []*listing.Listing
	for _, l := range r.items {
		if norm.Matches(l) {
			out = append(out, cloneListing(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	listing.SortListings(out, norm.Sort)
	return out, nil
}

func cloneListing(l *listing.Listing) *listing.Listing {
	cp := *l
	cp.Photos = append([]string(nil), l.Photos...)
	return &cp
}

type BookingRepository struct {
	mu    sync.RWMutex
	items map[booking.BookingID]*booking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[booking.BookingID]*booking.Booking)}
}

func (r *BookingRepository) ByID(_ context.Context, id booking.BookingID) (*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return cloneBooking(b), nil
}

func (r *BookingRepository) ByListing(_ context.Context, listingID listing.ListingID) ([]*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range r.items {
		if b.ListingID == listingID {
			out = append(out, cloneBooking(b))
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *BookingRepository) ByListings(_ context.Context, listingIDs []listing.ListingID) ([]*booking.Booking, error) {
	wanted := make(map[listing.ListingID]struct{}, len(listingIDs))
	for _, id := range listingIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range r.items {
		if _, ok := wanted[b.ListingID]; ok {
			out = append(out, cloneBooking(b))
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *BookingRepository) Save(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.Version == 0 {
		b.Version = 1
	} else {
		b.Version++
	}
	r.items[b.ID] = cloneBooking(b)
	return nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	cp := *b
	cp.ClearEvents()
	return &cp
}

func sortBookings(items []*booking.Booking) {
	sort.Slice(items, func(i, j int) bool { return items[i].CheckIn.Before(items[j].CheckIn) })
}

type DayMetaRepository struct {
	mu    sync.RWMutex
	items map[string]calendar.DayMeta
}

func NewDayMetaRepository() *DayMetaRepository {
	return &DayMetaRepository{items: make(map[string]calendar.DayMeta)}
}

func (r *DayMetaRepository) Get(_ context.Context, listingID listing.ListingID, day string) (calendar.DayMeta, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.items[calendar.MetaKey(listingID, day)]
	return meta, ok, nil
}

func (r *DayMetaRepository) ByListingsInRange(_ context.Context, listingIDs []listing.ListingID, from, to string) (map[string]calendar.DayMeta, error) {
	wanted := make(map[listing.ListingID]struct{}, len(listingIDs))
	for _, id := range listingIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]calendar.DayMeta)
	for key, meta := range r.items {
		if _, ok := wanted[meta.ListingID]; !ok {
			continue
		}
		if meta.Day < from || meta.Day > to {
			continue
		}
		out[key] = meta
	}
	return out, nil
}

func (r *DayMetaRepository) Save(_ context.Context, meta calendar.DayMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meta.Empty() {
		delete(r.items, meta.Key())
		return nil
	}
	r.items[meta.Key()] = meta
	return nil
}

type SpotRequestRepository struct {
	mu    sync.RWMutex
	items map[string]spotrequest.SpotRequest
}

func NewSpotRequestRepository() *SpotRequestRepository {
	return &SpotRequestRepository{items: make(map[string]spotrequest.SpotRequest)}
}

func (r *SpotRequestRepository) Save(_ context.Context, rec spotrequest.SpotRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.ID] = rec
	return nil
}

func (r *SpotRequestRepository) RecentOpen(_ context.Context, limit int) ([]spotrequest.SpotRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []spotrequest.SpotRequest
	for _, rec := range r.items {
		if rec.Status == spotrequest.StatusOpen {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type LeadRepository struct {
	mu        sync.RWMutex
	interest  map[string]lead.Interest
	providers map[string]lead.Provider
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		interest:  make(map[string]lead.Interest),
		providers: make(map[string]lead.Provider),
	}
}

func (r *LeadRepository) SaveInterest(_ context.Context, rec lead.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interest[rec.ID] = rec
	return nil
}

func (r *LeadRepository) SaveProvider(_ context.Context, rec lead.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[rec.ID] = rec
	return nil
}
