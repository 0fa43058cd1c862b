package middleware

import (
	"strings"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/service"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// keySession is the echo context key holding the request's session.
	keySession = "session"

	// HeaderXVisitorID keys anonymous browsing state so that feed pagination
	// survives across requests from the same visitor.
	HeaderXVisitorID = "X-Visitor-Id"
)

// SessionMiddleware binds each request to its session container: by the
// bearer credential's subject when one is presented, by the visitor header
// otherwise.
type SessionMiddleware struct {
	verifier service.CredentialVerifier
	registry *state.Registry
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(verifier service.CredentialVerifier, registry *state.Registry, sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{verifier: verifier, registry: registry, sessions: sessions}
}

// Attach resolves the session for the request. Requests without a usable
// credential still get a session, just an unauthenticated one.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if credential, ok := bearerCredential(c); ok {
			claims, err := m.verifier.Decode(credential)
			if err == nil {
				session := m.registry.GetOrCreate(claims.Subject)
				if session.Credential() != credential {
					// A credential the registry has never seen, e.g. after a
					// restart. Hold it and let the session endpoint resolve.
					session.BeginResolving(credential)
				}
				c.Set(keySession, session)

				return next(c)
			}
			// A garbled credential falls through to anonymous: the auth
			// gate on protected routes rejects it there.
		}

		visitor := c.Request().Header.Get(HeaderXVisitorID)
		if visitor == "" {
			visitor = uuid.New().String()
		}
		c.Set(keySession, m.registry.GetOrCreate("visitor:"+visitor))
		c.Response().Header().Set(HeaderXVisitorID, visitor)

		return next(c)
	}
}

// RequireAuth gates a route on an authenticated session. A session still
// holding an unresolved credential is resolved here before the handler runs.
// It must run after Attach.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := GetSession(c)
		if session == nil || session.Credential().IsZero() {
			return errors.WithStack(domainerrors.ErrAuthRequired)
		}

		if session.Phase() != entity.PhaseAuthenticated {
			if _, err := m.sessions.Resolve(c.Request().Context(), session); err != nil {
				return errors.WithStack(err)
			}
		}

		return next(c)
	}
}

// GetSession returns the session bound to the request, nil when Attach did
// not run.
func GetSession(c echo.Context) *state.Session {
	if session, ok := c.Get(keySession).(*state.Session); ok {
		return session
	}

	return nil
}

func bearerCredential(c echo.Context) (entity.Credential, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}

	return entity.Credential(token), true
}
