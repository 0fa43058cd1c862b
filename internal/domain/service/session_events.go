package service

import (
	"context"

	"neocart/internal/domain/entity"
)

// SessionEventType identifies a session lifecycle transition.
type SessionEventType string

const (
	// SessionLogin is emitted after a credential resolves to a profile.
	SessionLogin SessionEventType = "login"
	// SessionLogout is emitted when the credential is cleared, whether by an
	// explicit logout or by a failed resolution.
	SessionLogout SessionEventType = "logout"
)

// SessionEvent is published by the session store on login and logout.
// Consumers subscribe instead of being reached into directly, so no cyclic
// ownership exists between the stores.
type SessionEvent struct {
	Type    SessionEventType
	Subject string          // Registry key of the affected session; empty when undecodable.
	Profile *entity.Profile // Set on login, nil on logout.
}

// SessionEvents is the in-process publish/subscribe contract for session
// lifecycle events. Delivery is synchronous, matching the single logical
// thread the state model assumes.
type SessionEvents interface {
	// Publish delivers the event to every subscriber in subscription order.
	Publish(ctx context.Context, event SessionEvent)

	// Subscribe registers a handler for all future events.
	Subscribe(handler func(ctx context.Context, event SessionEvent))
}
