package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func newTestBus() service.SessionEvents {
	return NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_PublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := newTestBus()

	var order []string
	bus.Subscribe(func(ctx context.Context, event service.SessionEvent) {
		order = append(order, "first")
	})
	bus.Subscribe(func(ctx context.Context, event service.SessionEvent) {
		order = append(order, "second")
	})

	bus.Publish(context.Background(), service.SessionEvent{Type: service.SessionLogout})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_PublishCarriesProfileOnLogin(t *testing.T) {
	bus := newTestBus()

	var received service.SessionEvent
	bus.Subscribe(func(ctx context.Context, event service.SessionEvent) {
		received = event
	})

	profile := &entity.Profile{ID: "user-1", Email: "shopper@example.com"}
	bus.Publish(context.Background(), service.SessionEvent{Type: service.SessionLogin, Profile: profile})

	assert.Equal(t, service.SessionLogin, received.Type)
	assert.Same(t, profile, received.Profile)
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := newTestBus()

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), service.SessionEvent{Type: service.SessionLogout})
	})
}
