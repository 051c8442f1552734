package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Beto956/rvnb/internal/domain/calendar"
	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
)

type DayMetaRepository struct {
	col *mongo.Collection
}

func NewDayMetaRepository(db *mongo.Database) *DayMetaRepository {
	return &DayMetaRepository{col: db.Collection("dayMeta")}
}

func (r *DayMetaRepository) Get(ctx context.Context, listingID domainlisting.ListingID, day string) (calendar.DayMeta, bool, error) {
	var doc dayMetaDocument
	err := r.col.FindOne(ctx, bson.M{"_id": calendar.MetaKey(listingID, day)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return calendar.DayMeta{}, false, nil
		}
		return calendar.DayMeta{}, false, err
	}
	return doc.toMeta(), true, nil
}

// ByListingsInRange relies on the lexicographic ordering of YYYY-MM-DD keys,
// so the range filter is a plain string comparison on day.
func (r *DayMetaRepository) ByListingsInRange(ctx context.Context, listingIDs []domainlisting.ListingID, from, to string) (map[string]calendar.DayMeta, error) {
	ids := make([]string, 0, len(listingIDs))
	for _, id := range listingIDs {
		ids = append(ids, string(id))
	}
	out := make(map[string]calendar.DayMeta)
	for _, chunk := range chunkStrings(ids) {
		filter := bson.M{
			"listing_id": bson.M{"$in": chunk},
			"day":        bson.M{"$gte": from, "$lte": to},
		}
		cur, err := r.col.Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		if err := collectDayMeta(ctx, cur, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Save upserts by composite key. An empty meta deletes the record instead, so
// cleared days do not accumulate as blank documents.
func (r *DayMetaRepository) Save(ctx context.Context, meta calendar.DayMeta) error {
	if meta.Empty() {
		_, err := r.col.DeleteOne(ctx, bson.M{"_id": meta.Key()})
		return err
	}
	doc := newDayMetaDocument(meta)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func collectDayMeta(ctx context.Context, cur *mongo.Cursor, out map[string]calendar.DayMeta) error {
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var doc dayMetaDocument
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		meta := doc.toMeta()
		out[meta.Key()] = meta
	}
	return cur.Err()
}

type dayMetaDocument struct {
	ID          string `bson:"_id"`
	ListingID   string `bson:"listing_id"`
	Day         string `bson:"day"`
	Blocked     bool   `bson:"blocked,omitempty"`
	BlockReason string `bson:"block_reason,omitempty"`
	Signal      string `bson:"signal,omitempty"`
	Note        string `bson:"note,omitempty"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func newDayMetaDocument(meta calendar.DayMeta) dayMetaDocument {
	return dayMetaDocument{
		ID:          meta.Key(),
		ListingID:   string(meta.ListingID),
		Day:         meta.Day,
		Blocked:     meta.Blocked,
		BlockReason: meta.BlockReason,
		Signal:      string(meta.Signal),
		Note:        meta.Note,
		UpdatedAt:   meta.UpdatedAt.UnixMilli(),
	}
}

func (d dayMetaDocument) toMeta() calendar.DayMeta {
	return calendar.DayMeta{
		ListingID:   domainlisting.ListingID(d.ListingID),
		Day:         d.Day,
		Blocked:     d.Blocked,
		BlockReason: d.BlockReason,
		Signal:      calendar.ParseSignal(d.Signal),
		Note:        d.Note,
		UpdatedAt:   time.UnixMilli(d.UpdatedAt).UTC(),
	}
}
