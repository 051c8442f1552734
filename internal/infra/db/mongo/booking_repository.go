package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Beto956/rvnb/internal/domain/booking"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/shared/dates"
)

// ErrVersionConflict is returned when a compare-and-set save loses to a
// concurrent writer.
var ErrVersionConflict = errors.New("mongo: stale aggregate version")

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id booking.BookingID) (*booking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BookingRepository) ByListing(ctx context.Context, listingID domainlisting.ListingID) ([]*booking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"listing_id": string(listingID)}, opts)
	if err != nil {
		return nil, err
	}
	return decodeBookings(ctx, cur)
}

// ByListings batches the $in filter in chunks so a host with many listings
// never issues an oversized query.
func (r *BookingRepository) ByListings(ctx context.Context, listingIDs []domainlisting.ListingID) ([]*booking.Booking, error) {
	ids := make([]string, 0, len(listingIDs))
	for _, id := range listingIDs {
		ids = append(ids, string(id))
	}
	var out []*booking.Booking
	for _, chunk := range chunkStrings(ids) {
		cur, err := r.col.Find(ctx, bson.M{"listing_id": bson.M{"$in": chunk}})
		if err != nil {
			return nil, err
		}
		batch, err := decodeBookings(ctx, cur)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

// Save inserts new bookings and CAS-updates existing ones on the version
// field. A lost race surfaces as ErrVersionConflict.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	doc := newBookingDocument(b)
	if b.Version == 0 {
		doc.Version = 1
		if _, err := r.col.InsertOne(ctx, doc); err != nil {
			return err
		}
		b.Version = 1
		return nil
	}

	next := b.Version + 1
	doc.Version = next
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID, "version": b.Version}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	b.Version = next
	return nil
}

func decodeBookings(ctx context.Context, cur *mongo.Cursor) ([]*booking.Booking, error) {
	defer cur.Close(ctx)
	var out []*booking.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

type bookingDocument struct {
	ID             string `bson:"_id"`
	ListingID      string `bson:"listing_id"`
	CheckIn        string `bson:"check_in"`
	CheckOut       string `bson:"check_out"`
	StayType       string `bson:"stay_type"`
	Nights         int    `bson:"nights"`
	EstimatedTotal int64  `bson:"estimated_total"`
	Note           string `bson:"note,omitempty"`
	GuestName      string `bson:"guest_name,omitempty"`
	GuestEmail     string `bson:"guest_email,omitempty"`
	Status         string `bson:"status"`
	CreatedAt      int64  `bson:"created_at"`
	UpdatedAt      int64  `bson:"updated_at"`
	Version        int64  `bson:"version"`
}

func newBookingDocument(b *booking.Booking) bookingDocument {
	return bookingDocument{
		ID:             string(b.ID),
		ListingID:      string(b.ListingID),
		CheckIn:        dates.Key(b.CheckIn),
		CheckOut:       dates.Key(b.CheckOut),
		StayType:       string(b.StayType),
		Nights:         b.Nights,
		EstimatedTotal: b.EstimatedTotal,
		Note:           b.Note,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.UnixMilli(),
		UpdatedAt:      b.UpdatedAt.UnixMilli(),
		Version:        b.Version,
	}
}

func (d bookingDocument) toAggregate() *booking.Booking {
	checkIn, _ := dates.ParseKey(d.CheckIn)
	checkOut, _ := dates.ParseKey(d.CheckOut)
	status, ok := booking.ParseStatus(d.Status)
	if !ok {
		status = booking.StatusRequested
	}
	return &booking.Booking{
		ID:             booking.BookingID(d.ID),
		ListingID:      domainlisting.ListingID(d.ListingID),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		StayType:       booking.SafeStayType(d.StayType),
		Nights:         d.Nights,
		EstimatedTotal: d.EstimatedTotal,
		Note:           d.Note,
		GuestName:      d.GuestName,
		GuestEmail:     d.GuestEmail,
		Status:         status,
		CreatedAt:      time.UnixMilli(d.CreatedAt).UTC(),
		UpdatedAt:      time.UnixMilli(d.UpdatedAt).UTC(),
		Version:        d.Version,
	}
}
