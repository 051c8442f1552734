package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Beto956/rvnb/internal/infra/outbox"
)

const outboxClaimLease = 30 * time.Second

// OutboxStore persists pending events alongside the aggregates they describe.
// Claim leases one unsent record at a time so multiple workers never double
// publish; a crashed worker's lease expires and the record is claimed again.
type OutboxStore struct {
	col *mongo.Collection
}

func NewOutboxStore(db *mongo.Database) *OutboxStore {
	return &OutboxStore{col: db.Collection("outbox")}
}

func (s *OutboxStore) Append(ctx context.Context, rec outbox.Record) error {
	doc := outboxDocument{
		ID:         rec.ID,
		Name:       rec.Name,
		Aggregate:  rec.Aggregate,
		Payload:    rec.Payload,
		OccurredAt: rec.OccurredAt.UnixMilli(),
		Attempts:   rec.Attempts,
		Status:     "pending",
	}
	_, err := s.col.InsertOne(ctx, doc)
	return err
}

func (s *OutboxStore) Claim(ctx context.Context) (*outbox.Record, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"status":        "pending",
		"claimed_until": bson.M{"$lt": now.UnixMilli()},
	}
	update := bson.M{
		"$set": bson.M{"claimed_until": now.Add(outboxClaimLease).UnixMilli()},
		"$inc": bson.M{"attempts": 1},
	}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "occurred_at", Value: 1}}).
		SetReturnDocument(options.After)

	var doc outboxDocument
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &outbox.Record{
		ID:         doc.ID,
		Name:       doc.Name,
		Aggregate:  doc.Aggregate,
		Payload:    doc.Payload,
		OccurredAt: time.UnixMilli(doc.OccurredAt).UTC(),
		Attempts:   doc.Attempts,
	}, nil
}

func (s *OutboxStore) MarkSent(ctx context.Context, id string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": "sent", "sent_at": time.Now().UTC().UnixMilli()},
	})
	return err
}

func (s *OutboxStore) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": "pending", "claimed_until": int64(0), "last_error": reason},
	})
	return err
}

type outboxDocument struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Aggregate    string `bson:"aggregate"`
	Payload      []byte `bson:"payload"`
	OccurredAt   int64  `bson:"occurred_at"`
	Attempts     int    `bson:"attempts"`
	Status       string `bson:"status"`
	ClaimedUntil int64  `bson:"claimed_until"`
	SentAt       int64  `bson:"sent_at,omitempty"`
	LastError    string `bson:"last_error,omitempty"`
}
