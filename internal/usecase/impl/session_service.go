// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"neocart/config"
	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/domain/service"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accounts    gateway.AccountGateway
	verifier    service.CredentialVerifier
	preferences service.PreferenceStore
	events      service.SessionEvents
	registry    *state.Registry
	adminEmail  string
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	accounts gateway.AccountGateway,
	verifier service.CredentialVerifier,
	preferences service.PreferenceStore,
	events service.SessionEvents,
	registry *state.Registry,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		accounts:    accounts,
		verifier:    verifier,
		preferences: preferences,
		events:      events,
		registry:    registry,
		adminEmail:  cfg.Identity.AdminEmail,
		logger:      logger,
	}
}

// Login exchanges the identity provider token for a credential and resolves
// the profile.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionView, error) {
	srv.logger.Info("Logging in")

	credential, err := srv.accounts.ExchangeToken(ctx, input.IDToken, input.AvatarURL)
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrLoginFailed, err.Error())
		}

		return nil, errors.Wrap(err, "failed to exchange identity token")
	}

	view, err := srv.install(ctx, credential)
	if err != nil {
		return nil, err
	}

	if err := srv.preferences.SaveCredential(ctx, credential); err != nil {
		// The session is live; a persistence failure only costs the restart
		// restore.
		srv.logger.Warn("Failed to persist credential", slog.Any("error", err))
	}

	return view, nil
}

// Restore replays the persisted credential on startup.
func (srv *sessionService) Restore(ctx context.Context) (*usecase.SessionView, error) {
	credential, err := srv.preferences.LoadCredential(ctx)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			srv.logger.Debug("No persisted credential to restore")

			return &usecase.SessionView{Phase: entity.PhaseUnauthenticated, View: entity.ViewRetailer}, nil
		}

		return nil, errors.Wrap(err, "failed to load persisted credential")
	}

	view, err := srv.install(ctx, credential)
	if err != nil {
		// A stale credential resolves silently to no session.
		srv.logger.Info("Persisted credential no longer valid", slog.Any("error", err))
		if clearErr := srv.preferences.ClearCredential(ctx); clearErr != nil {
			srv.logger.Warn("Failed to clear stale credential", slog.Any("error", clearErr))
		}

		return &usecase.SessionView{Phase: entity.PhaseUnauthenticated, View: entity.ViewRetailer}, nil
	}

	return view, nil
}

// install decodes the credential, binds it to its session and resolves the
// profile. On any failure the session is reset, never left half resolved.
func (srv *sessionService) install(ctx context.Context, credential entity.Credential) (*usecase.SessionView, error) {
	claims, err := srv.verifier.Decode(credential)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
	}

	session := srv.registry.GetOrCreate(claims.Subject)
	session.BeginResolving(credential)

	// A failed resolution publishes a logout event, which evicts the
	// registry entry through the subscriber.
	return srv.resolve(ctx, session)
}

// resolve fetches the profile for the session's held credential.
func (srv *sessionService) resolve(ctx context.Context, session *state.Session) (*usecase.SessionView, error) {
	credential := session.Credential()
	if credential.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrAuthRequired, "no credential held")
	}

	subject := srv.subjectOf(credential)

	profile, err := srv.accounts.FetchProfile(ctx, credential)
	if err != nil {
		session.Reset()
		srv.events.Publish(ctx, service.SessionEvent{Type: service.SessionLogout, Subject: subject})

		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		return nil, errors.Wrap(err, "failed to resolve profile")
	}

	session.CompleteResolution(profile)
	srv.events.Publish(ctx, service.SessionEvent{Type: service.SessionLogin, Subject: subject, Profile: profile})

	srv.logger.Info("Session resolved",
		slog.String("userID", profile.ID),
		slog.String("role", profile.Role.String()),
		slog.Bool("isAdmin", entity.IsAdmin(profile, srv.adminEmail)))

	return srv.View(session), nil
}

// subjectOf returns the registry key for the credential, empty when the
// credential no longer decodes.
func (srv *sessionService) subjectOf(credential entity.Credential) string {
	claims, err := srv.verifier.Decode(credential)
	if err != nil {
		return ""
	}

	return claims.Subject
}

// Resolve re-fetches the profile for the session's held credential.
func (srv *sessionService) Resolve(ctx context.Context, session *state.Session) (*usecase.SessionView, error) {
	return srv.resolve(ctx, session)
}

// Logout clears the session and the persisted credential.
func (srv *sessionService) Logout(ctx context.Context, session *state.Session) error {
	srv.logger.Info("Logging out")

	// Capture the subject before the reset wipes the credential; the event
	// subscriber evicts the registry entry.
	subject := srv.subjectOf(session.Credential())
	session.Reset()
	srv.events.Publish(ctx, service.SessionEvent{Type: service.SessionLogout, Subject: subject})

	if err := srv.preferences.ClearCredential(ctx); err != nil {
		return errors.Wrap(err, "failed to clear persisted credential")
	}

	return nil
}

// View projects the session without any round trip.
func (srv *sessionService) View(session *state.Session) *usecase.SessionView {
	profile := session.Profile()

	return &usecase.SessionView{
		Phase:   session.Phase(),
		Profile: profile,
		IsAdmin: entity.IsAdmin(profile, srv.adminEmail),
		View:    srv.EffectiveView(session),
	}
}

// EffectiveView derives the pricing tier for the session.
func (srv *sessionService) EffectiveView(session *state.Session) entity.PriceView {
	if session == nil {
		return entity.ViewRetailer
	}

	return entity.ResolvePriceView(session.Profile(), srv.adminEmail, session.AdminView())
}

// SetAdminView stores the admin's tier selection.
func (srv *sessionService) SetAdminView(_ context.Context, session *state.Session, view entity.PriceView) error {
	if !view.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown pricing view %q", view)
	}
	if !entity.IsAdmin(session.Profile(), srv.adminEmail) {
		return errors.Wrap(domainerrors.ErrForbidden, "pricing view selection is admin only")
	}

	session.SetAdminView(view)
	srv.logger.Debug("Admin pricing view changed", slog.String("view", view.String()))

	return nil
}

// UpdateProfile saves the contact fields upstream and installs the fresh
// credential minted by the upstream.
func (srv *sessionService) UpdateProfile(ctx context.Context, session *state.Session, input *usecase.UpdateProfileInput) (*usecase.SessionView, error) {
	credential := session.Credential()
	if credential.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrAuthRequired, "profile update requires a session")
	}

	srv.logger.Info("Updating profile")

	fresh, err := srv.accounts.UpdateProfile(ctx, credential, entity.ProfileUpdate{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		Pincode: input.Pincode,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		var rejection *gateway.RejectionError
		if errors.As(err, &rejection) {
			return nil, domainerrors.ErrUpstreamRejected.WithDetails(rejection.Reason)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	// The old credential is dead; everything re-keys on the fresh one.
	session.BeginResolving(fresh)
	view, err := srv.resolve(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := srv.preferences.SaveCredential(ctx, fresh); err != nil {
		srv.logger.Warn("Failed to persist rotated credential", slog.Any("error", err))
	}

	return view, nil
}

// Theme returns the persisted theme preference, defaulting to dark.
func (srv *sessionService) Theme(ctx context.Context) (service.Theme, error) {
	theme, err := srv.preferences.LoadTheme(ctx)
	if err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			return service.ThemeDark, nil
		}

		return "", errors.Wrap(err, "failed to load theme")
	}

	return theme, nil
}

// SetTheme persists the theme preference.
func (srv *sessionService) SetTheme(ctx context.Context, theme service.Theme) error {
	if !theme.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown theme %q", theme)
	}

	if err := srv.preferences.SaveTheme(ctx, theme); err != nil {
		return errors.Wrap(err, "failed to persist theme")
	}

	return nil
}
