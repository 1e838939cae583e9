package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Balerion769/Disaster-Response-Platform/pkg/e"
)

// Broadcaster drains the event queue and pushes each event to the
// WebSocket hub.
type Broadcaster struct {
	queue  *EventQueue
	hub    *Hub
	logger *slog.Logger
}

func NewBroadcaster(queue *EventQueue, hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{queue: queue, hub: hub, logger: logger}
}

func (b *Broadcaster) Run(ctx context.Context) {
	b.logger.Info("broadcaster STARTED")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("broadcaster STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := b.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			b.logger.Error("event dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		b.logger.Debug("broadcasting event", slog.String("event", event.Name), slog.String("action", event.Action))
		b.hub.Broadcast(event)
	}
}
