// Package usecase contains the application business rules interfaces.
package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"
	"neocart/internal/state"
)

// LoginInput carries the federated sign-in result to be exchanged for a
// commerce API credential.
type LoginInput struct {
	IDToken   string `json:"idToken" validate:"required"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

// SessionView is the resolved session projection returned to the delivery
// layer. View is re-derived on every call, never cached.
type SessionView struct {
	Phase   entity.SessionPhase
	Profile *entity.Profile
	IsAdmin bool
	View    entity.PriceView
}

// SessionUsecase drives the session lifecycle: credential exchange, profile
// resolution, logout and the derived pricing view.
type SessionUsecase interface {
	// Login exchanges the identity provider token for a credential, resolves
	// the profile and persists the credential for restarts.
	Login(ctx context.Context, input *LoginInput) (*SessionView, error)

	// Restore replays the persisted credential on startup. A missing or
	// stale credential resolves silently to no session.
	Restore(ctx context.Context) (*SessionView, error)

	// Resolve re-fetches the profile for the session's held credential. A
	// failed resolution resets the session to unauthenticated.
	Resolve(ctx context.Context, session *state.Session) (*SessionView, error)

	// Logout clears the session and the persisted credential.
	Logout(ctx context.Context, session *state.Session) error

	// View projects the session without any round trip.
	View(session *state.Session) *SessionView

	// EffectiveView derives the pricing tier for the session.
	EffectiveView(session *state.Session) entity.PriceView

	// SetAdminView stores the admin's tier selection. Non-admin sessions are
	// rejected.
	SetAdminView(ctx context.Context, session *state.Session, view entity.PriceView) error

	// UpdateProfile saves the contact fields upstream, installs the fresh
	// credential the upstream mints and re-resolves the profile.
	UpdateProfile(ctx context.Context, session *state.Session, input *UpdateProfileInput) (*SessionView, error)

	// Theme returns the persisted theme preference, defaulting to dark.
	Theme(ctx context.Context) (service.Theme, error)

	// SetTheme persists the theme preference.
	SetTheme(ctx context.Context, theme service.Theme) error
}

// UpdateProfileInput carries the editable contact fields.
type UpdateProfileInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}
