// README: Redis pub/sub fan-out for donation lifecycle events.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const channel = "foodbridge:events"

// Broadcaster publishes lifecycle events to the shared Redis channel that
// socket gateways subscribe to. Publishing is best-effort: a broken broker
// never fails the operation that produced the event.
type Broadcaster struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewBroadcaster(rdb *redis.Client, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{rdb: rdb, logger: logger}
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

func (b *Broadcaster) Publish(ctx context.Context, event string, payload any) {
	body, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		b.logger.Warn("event marshal failed", "event", event, "error", err)
		return
	}
	if err := b.rdb.Publish(ctx, channel, body).Err(); err != nil {
		b.logger.Warn("event publish failed", "event", event, "error", err)
	}
}

// Subscribe returns the raw pub/sub handle for gateway processes that relay
// events to clients.
func (b *Broadcaster) Subscribe(ctx context.Context) *redis.PubSub {
	return b.rdb.Subscribe(ctx, channel)
}
