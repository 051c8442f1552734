// Package outbox implements store-and-forward publishing of domain events:
// services append events in the same flow that persists the aggregate, and a
// background worker drains them to the broker.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Beto956/rvnb/internal/domain/booking"
)

// Record is one stored, not-yet-published event.
type Record struct {
	ID         string
	Name       string
	Aggregate  string
	Payload    []byte
	OccurredAt time.Time
	Attempts   int
}

// Store holds pending records. Claim hands out at most one unsent record at a
// time; MarkSent/MarkFailed settle it.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Claim(ctx context.Context) (*Record, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// RecordEvents encodes drained booking events into the store.
func RecordEvents(ctx context.Context, store Store, events []booking.Event) error {
	if store == nil || len(events) == 0 {
		return nil
	}
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("outbox: encode %s: %w", e.Name(), err)
		}
		rec := Record{
			ID:         uuid.NewString(),
			Name:       e.Name(),
			Aggregate:  e.Aggregate(),
			Payload:    payload,
			OccurredAt: time.Now().UTC(),
		}
		if err := store.Append(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
