package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
)

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection("listings")}
}

func (r *ListingRepository) ByID(ctx context.Context, id domainlisting.ListingID) (*domainlisting.Listing, error) {
	var doc listingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainlisting.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *ListingRepository) ByHost(ctx context.Context, host domainlisting.HostID) ([]*domainlisting.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"host_id": string(host)}, opts)
	if err != nil {
		return nil, err
	}
	return decodeListings(ctx, cur)
}

func (r *ListingRepository) Save(ctx context.Context, l *domainlisting.Listing) error {
	doc := newListingDocument(l)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

// Search fetches candidates ordered newest first and filters in memory; the
// catalog is small and the filter set (state, price cap, hookups, amenities,
// free text) does not map cleanly onto indexed store queries.
func (r *ListingRepository) Search(ctx context.Context, params domainlisting.SearchParams) ([]*domainlisting.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	items, err := decodeListings(ctx, cur)
	if err != nil {
		return nil, err
	}
	norm := params.Normalized()
	matched := make([]*domainlisting.Listing, 0, len(items))
	for _, l := range items {
		if norm.Matches(l) {
			matched = append(matched, l)
		}
	}
	domainlisting.SortListings(matched, norm.Sort)
	return matched, nil
}

func decodeListings(ctx context.Context, cur *mongo.Cursor) ([]*domainlisting.Listing, error) {
	defer cur.Close(ctx)
	var out []*domainlisting.Listing
	for cur.Next(ctx) {
		var doc listingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

// listingDocument carries both historical pricing shapes; decoding goes
// through the domain normalizer rather than trusting the raw fields.
type listingDocument struct {
	ID                string   `bson:"_id"`
	HostID            string   `bson:"host_id,omitempty"`
	Title             string   `bson:"title,omitempty"`
	City              string   `bson:"city,omitempty"`
	State             string   `bson:"state,omitempty"`
	Price             *int64   `bson:"price,omitempty"`
	PricePerNight     *int64   `bson:"pricePerNight,omitempty"`
	PricingType       string   `bson:"pricingType,omitempty"`
	MaxLengthFt       int      `bson:"maxLengthFt,omitempty"`
	Hookups           string   `bson:"hookups,omitempty"`
	Power             string   `bson:"power,omitempty"`
	Water             string   `bson:"water,omitempty"`
	Sewer             string   `bson:"sewer,omitempty"`
	Laundry           string   `bson:"laundry,omitempty"`
	Description       string   `bson:"description,omitempty"`
	NearbyAttractions string   `bson:"nearbyAttractions,omitempty"`
	Wifi              bool     `bson:"wifi,omitempty"`
	PetsAllowed       bool     `bson:"petsAllowed,omitempty"`
	FirePit           bool     `bson:"firePit,omitempty"`
	PicnicTable       bool     `bson:"picnicTable,omitempty"`
	PullThrough       bool     `bson:"pullThrough,omitempty"`
	TrashPickup       bool     `bson:"trashPickup,omitempty"`
	SecurityCameras   bool     `bson:"securityCameras,omitempty"`
	Gym               bool     `bson:"gym,omitempty"`
	Bathrooms         bool     `bson:"bathrooms,omitempty"`
	Showers           bool     `bson:"showers,omitempty"`
	Photos            []string `bson:"photos,omitempty"`
	CreatedAt         int64    `bson:"created_at,omitempty"`
	UpdatedAt         int64    `bson:"updated_at,omitempty"`
}

func newListingDocument(l *domainlisting.Listing) listingDocument {
	price := l.Price
	return listingDocument{
		ID:                string(l.ID),
		HostID:            string(l.Host),
		Title:             l.Title,
		City:              l.City,
		State:             l.State,
		Price:             &price,
		PricingType:       string(l.PricingPeriod),
		MaxLengthFt:       l.MaxLengthFt,
		Hookups:           string(l.Hookups),
		Power:             string(l.Power),
		Water:             string(l.Water),
		Sewer:             string(l.Sewer),
		Laundry:           string(l.Laundry),
		Description:       l.Description,
		NearbyAttractions: l.NearbyAttractions,
		Wifi:              l.Amenities.Wifi,
		PetsAllowed:       l.Amenities.PetsAllowed,
		FirePit:           l.Amenities.FirePit,
		PicnicTable:       l.Amenities.PicnicTable,
		PullThrough:       l.Amenities.PullThrough,
		TrashPickup:       l.Amenities.TrashPickup,
		SecurityCameras:   l.Amenities.SecurityCameras,
		Gym:               l.Amenities.Gym,
		Bathrooms:         l.Amenities.Bathrooms,
		Showers:           l.Amenities.Showers,
		Photos:            l.Photos,
		CreatedAt:         l.CreatedAt.UnixMilli(),
		UpdatedAt:         l.UpdatedAt.UnixMilli(),
	}
}

func (d listingDocument) toAggregate() *domainlisting.Listing {
	return domainlisting.FromDoc(domainlisting.ListingID(d.ID), domainlisting.Doc{
		Host:              d.HostID,
		Title:             d.Title,
		City:              d.City,
		State:             d.State,
		PricePerNight:     d.PricePerNight,
		Price:             d.Price,
		PricingType:       d.PricingType,
		MaxLengthFt:       d.MaxLengthFt,
		Hookups:           d.Hookups,
		Power:             d.Power,
		Water:             d.Water,
		Sewer:             d.Sewer,
		Laundry:           d.Laundry,
		Description:       d.Description,
		NearbyAttractions: d.NearbyAttractions,
		Wifi:              d.Wifi,
		PetsAllowed:       d.PetsAllowed,
		FirePit:           d.FirePit,
		PicnicTable:       d.PicnicTable,
		PullThrough:       d.PullThrough,
		TrashPickup:       d.TrashPickup,
		SecurityCameras:   d.SecurityCameras,
		Gym:               d.Gym,
		Bathrooms:         d.Bathrooms,
		Showers:           d.Showers,
		Photos:            d.Photos,
		CreatedAt:         timestampToTime(d.CreatedAt),
		UpdatedAt:         timestampToTime(d.UpdatedAt),
	})
}

func timestampToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
