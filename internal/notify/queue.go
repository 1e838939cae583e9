package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Balerion769/Disaster-Response-Platform/internal/domain"
	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// EventQueue buffers fan-out events in a Redis list between the request
// path and the broadcaster worker. Publishing is best-effort: the
// pipelines must never fail a request because a notification could not
// be queued.
type EventQueue struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

func NewEventQueue(client *redis.Client, key string, logger *slog.Logger) *EventQueue {
	return &EventQueue{client: client, key: key, logger: logger}
}

// Publish enqueues the event. Failures are logged and swallowed.
func (q *EventQueue) Publish(ctx context.Context, event domain.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	b, err := json.Marshal(event)
	if err != nil {
		q.logger.Warn("event marshal failed", slog.String("event", event.Name), slog.Any("error", err))
		return
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		q.logger.Warn("event enqueue failed", slog.String("event", event.Name), slog.Any("error", err))
	}
}

// Dequeue blocks up to timeout for the next event. Returns
// e.ErrQueueEmpty when nothing arrived.
func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.Event, error) {
	var ev domain.Event

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
