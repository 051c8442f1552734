package memory

import (
	"context"
	"sync"

	"github.com/Beto956/rvnb/internal/infra/outbox"
)

// OutboxStore keeps pending records in insertion order. Claim leases the
// oldest unclaimed record; MarkFailed releases the lease so it is retried.
type OutboxStore struct {
	mu      sync.Mutex
	pending []outbox.Record
	claimed map[string]outbox.Record
}

func NewOutboxStore() *OutboxStore {
	return &OutboxStore{claimed: make(map[string]outbox.Record)}
}

func (s *OutboxStore) Append(_ context.Context, rec outbox.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, rec)
	return nil
}

func (s *OutboxStore) Claim(_ context.Context) (*outbox.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil, nil
	}
	rec := s.pending[0]
	s.pending = s.pending[1:]
	rec.Attempts++
	s.claimed[rec.ID] = rec
	cp := rec
	return &cp, nil
}

func (s *OutboxStore) MarkSent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.claimed, id)
	return nil
}

func (s *OutboxStore) MarkFailed(_ context.Context, id string, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.claimed[id]
	if !ok {
		return nil
	}
	delete(s.claimed, id)
	s.pending = append(s.pending, rec)
	return nil
}

// Pending reports how many records are waiting; tests use it to assert
// publication flow.
func (s *OutboxStore) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Drain returns and clears all waiting records.
func (s *OutboxStore) Drain() []outbox.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}
