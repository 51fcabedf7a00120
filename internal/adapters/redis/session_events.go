package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// SessionEvents broadcasts session lifecycle events over a Redis pub/sub
// channel. Every client of a session (other tabs, other devices behind the
// same gateway deployment) observes logins and logouts without polling.
type SessionEvents struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

// NewSessionEvents creates a broadcast adapter on the default channel.
func NewSessionEvents(client redis.UniversalClient, logger *slog.Logger) *SessionEvents {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionEvents{
		client:  client,
		channel: "session-events",
		logger:  logger,
	}
}

// Publish broadcasts the event to all subscribers.
func (e *SessionEvents) Publish(ctx context.Context, ev ports.SessionEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal session event: %w", err)
	}
	if err := e.client.Publish(ctx, e.channel, data).Err(); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of session events and a cancel function.
// Malformed payloads are logged and skipped. The channel is closed after
// cancel is called or the context ends.
func (e *SessionEvents) Subscribe(ctx context.Context) (<-chan ports.SessionEvent, func(), error) {
	sub := e.client.Subscribe(ctx, e.channel)

	// Force the subscription to be established before returning so callers
	// never miss events published right after Subscribe.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe session events: %w", err)
	}

	out := make(chan ports.SessionEvent)
	done := make(chan struct{})

	go func() {
		defer close(out)
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev ports.SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					e.logger.Warn("dropping malformed session event", "error", err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	cancel := func() {
		close(done)
		if err := sub.Close(); err != nil {
			e.logger.Warn("close session event subscription", "error", err)
		}
	}

	return out, cancel, nil
}
