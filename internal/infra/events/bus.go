// Package events provides the in-process session event bus.
package events

import (
	"context"
	"log/slog"
	"sync"

	"neocart/internal/domain/service"
)

// bus is a synchronous in-process implementation of service.SessionEvents.
// Handlers run in subscription order on the publisher's goroutine, matching
// the single logical thread the state model assumes.
type bus struct {
	mu       sync.RWMutex
	handlers []func(ctx context.Context, event service.SessionEvent)
	logger   *slog.Logger
}

// NewBus is the constructor for the session event bus.
func NewBus(logger *slog.Logger) service.SessionEvents {
	return &bus{logger: logger}
}

// Publish delivers the event to every subscriber in subscription order.
func (b *bus) Publish(ctx context.Context, event service.SessionEvent) {
	b.mu.RLock()
	handlers := append(([]func(ctx context.Context, event service.SessionEvent))(nil), b.handlers...)
	b.mu.RUnlock()

	b.logger.Debug("Publishing session event", slog.String("type", string(event.Type)), slog.Int("subscribers", len(handlers)))

	for _, handler := range handlers {
		handler(ctx, event)
	}
}

// Subscribe registers a handler for all future events.
func (b *bus) Subscribe(handler func(ctx context.Context, event service.SessionEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}
