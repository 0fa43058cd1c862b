package impl

import (
	"context"
	"log/slog"

	"neocart/internal/domain/service"
	"neocart/internal/state"
)

// RegisterSessionSubscribers attaches the registry janitor to the session
// event bus: a logout event evicts the subject's session container, so that
// failed resolutions and explicit logouts alike leave no stale state behind.
// Invoked once at application start.
func RegisterSessionSubscribers(events service.SessionEvents, registry *state.Registry, logger *slog.Logger) {
	events.Subscribe(func(_ context.Context, event service.SessionEvent) {
		if event.Type != service.SessionLogout || event.Subject == "" {
			return
		}

		registry.Delete(event.Subject)
		logger.Debug("Session evicted", slog.String("subject", event.Subject))
	})
}
