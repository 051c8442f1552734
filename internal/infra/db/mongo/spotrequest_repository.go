package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainlisting "github.com/Beto956/rvnb/internal/domain/listing"
	"github.com/Beto956/rvnb/internal/domain/spotrequest"
)

type SpotRequestRepository struct {
	col *mongo.Collection
}

func NewSpotRequestRepository(db *mongo.Database) *SpotRequestRepository {
	return &SpotRequestRepository{col: db.Collection("spotRequests")}
}

func (r *SpotRequestRepository) Save(ctx context.Context, rec spotrequest.SpotRequest) error {
	doc := newSpotRequestDocument(rec)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (r *SpotRequestRepository) RecentOpen(ctx context.Context, limit int) ([]spotrequest.SpotRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"status": string(spotrequest.StatusOpen)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []spotrequest.SpotRequest
	for cur.Next(ctx) {
		var doc spotRequestDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toRecord())
	}
	return out, cur.Err()
}

type spotRequestDocument struct {
	ID            string `bson:"_id"`
	LocationText  string `bson:"location_text,omitempty"`
	City          string `bson:"city,omitempty"`
	State         string `bson:"state,omitempty"`
	StartDate     string `bson:"start_date,omitempty"`
	EndDate       string `bson:"end_date,omitempty"`
	HookupsNeeded string `bson:"hookups_needed,omitempty"`
	BudgetMax     *int64 `bson:"budget_max,omitempty"`
	RVDetails     string `bson:"rv_details,omitempty"`
	Note          string `bson:"note,omitempty"`
	Status        string `bson:"status"`
	CreatedAt     int64  `bson:"created_at"`
}

func newSpotRequestDocument(rec spotrequest.SpotRequest) spotRequestDocument {
	return spotRequestDocument{
		ID:            rec.ID,
		LocationText:  rec.LocationText,
		City:          rec.City,
		State:         rec.State,
		StartDate:     rec.StartDate,
		EndDate:       rec.EndDate,
		HookupsNeeded: string(rec.HookupsNeeded),
		BudgetMax:     rec.BudgetMax,
		RVDetails:     rec.RVDetails,
		Note:          rec.Note,
		Status:        string(rec.Status),
		CreatedAt:     rec.CreatedAt.UnixMilli(),
	}
}

func (d spotRequestDocument) toRecord() spotrequest.SpotRequest {
	status := spotrequest.StatusOpen
	if d.Status == string(spotrequest.StatusClosed) {
		status = spotrequest.StatusClosed
	}
	return spotrequest.SpotRequest{
		ID:            d.ID,
		LocationText:  d.LocationText,
		City:          d.City,
		State:         d.State,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		HookupsNeeded: domainlisting.SafeHookups(d.HookupsNeeded),
		BudgetMax:     d.BudgetMax,
		RVDetails:     d.RVDetails,
		Note:          d.Note,
		Status:        status,
		CreatedAt:     time.UnixMilli(d.CreatedAt).UTC(),
	}
}
