package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrWorkerNotConfigured = errors.New("outbox: worker requires store and producer")

// Producer publishes a settled payload to the broker.
type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Worker polls the store and forwards records one at a time.
type Worker struct {
	Store       Store
	Producer    Producer
	Interval    time.Duration
	TopicPrefix string
	Source      string
	Logger      *slog.Logger
}

func (w *Worker) Run(ctx context.Context) error {
	if w.Store == nil || w.Producer == nil {
		return ErrWorkerNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.processOnce(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *Worker) processOnce(ctx context.Context) error {
	rec, err := w.Store.Claim(ctx)
	if err != nil || rec == nil {
		return err
	}
	payload, err := w.envelope(rec)
	if err != nil {
		_ = w.Store.MarkFailed(ctx, rec.ID, err.Error())
		return nil
	}
	topic := w.topicFor(rec.Name)
	headers := map[string]string{"event-name": rec.Name}
	if err := w.Producer.Publish(ctx, topic, rec.Aggregate, payload, headers); err != nil {
		if w.Logger != nil {
			w.Logger.Warn("outbox publish failed", "event", rec.Name, "error", err)
		}
		_ = w.Store.MarkFailed(ctx, rec.ID, err.Error())
		return nil
	}
	return w.Store.MarkSent(ctx, rec.ID)
}

func (w *Worker) envelope(rec *Record) ([]byte, error) {
	data := map[string]any{}
	if err := json.Unmarshal(rec.Payload, &data); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"id":     uuid.NewString(),
		"type":   rec.Name + ".v1",
		"source": w.source(),
		"time":   rec.OccurredAt,
		"data":   data,
	})
}

func (w *Worker) topicFor(name string) string {
	topic := strings.ReplaceAll(name, ".", "-")
	if w.TopicPrefix != "" {
		return w.TopicPrefix + "." + topic
	}
	return topic
}

func (w *Worker) source() string {
	if w.Source != "" {
		return w.Source
	}
	return "rvnb"
}

func (w *Worker) interval() time.Duration {
	if w.Interval > 0 {
		return w.Interval
	}
	return 500 * time.Millisecond
}
