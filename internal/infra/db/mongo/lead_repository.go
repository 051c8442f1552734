package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Beto956/rvnb/internal/domain/lead"
)

// LeadRepository writes interest signups and provider leads to their own
// collections. Both are append-mostly; upsert keeps retried form posts
// idempotent.
type LeadRepository struct {
	interest  *mongo.Collection
	providers *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		interest:  db.Collection("interest"),
		providers: db.Collection("providerLeads"),
	}
}

func (r *LeadRepository) SaveInterest(ctx context.Context, rec lead.Interest) error {
	doc := interestDocument{
		ID:           rec.ID,
		Email:        rec.Email,
		InterestType: rec.InterestType,
		Source:       rec.Source,
		Page:         rec.Page,
		CreatedAt:    rec.CreatedAt.UnixMilli(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.interest.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (r *LeadRepository) SaveProvider(ctx context.Context, rec lead.Provider) error {
	doc := providerDocument{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Company:     rec.Company,
		ServiceArea: rec.ServiceArea,
		Notes:       rec.Notes,
		Source:      rec.Source,
		Page:        rec.Page,
		CreatedAt:   rec.CreatedAt.UnixMilli(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.providers.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

type interestDocument struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	InterestType string `bson:"interest_type,omitempty"`
	Source       string `bson:"source,omitempty"`
	Page         string `bson:"page,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
}

type providerDocument struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Email       string `bson:"email"`
	Company     string `bson:"company,omitempty"`
	ServiceArea string `bson:"service_area,omitempty"`
	Notes       string `bson:"notes,omitempty"`
	Source      string `bson:"source,omitempty"`
	Page        string `bson:"page,omitempty"`
	CreatedAt   int64  `bson:"created_at"`
}
