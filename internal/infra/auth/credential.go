// Package auth decodes bearer credentials issued by the commerce API.
package auth

import (
	"log/slog"
	"time"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// credentialVerifier implements service.CredentialVerifier by structurally
// decoding the JWT the commerce API issues. The signature is not checked
// here: the upstream validates every forwarded call, and a structurally
// broken or expired token must be dropped before any round trip, which is
// all the session store needs.
type credentialVerifier struct {
	logger *slog.Logger
}

// NewCredentialVerifier is the constructor for credentialVerifier.
func NewCredentialVerifier(logger *slog.Logger) service.CredentialVerifier {
	return &credentialVerifier{logger: logger}
}

// Decode parses the credential and extracts its claims.
func (v *credentialVerifier) Decode(credential entity.Credential) (*service.CredentialClaims, error) {
	if credential.IsZero() {
		return nil, errors.New("empty credential")
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(credential.String(), claims); err != nil {
		v.logger.Warn("Failed to decode credential", slog.String("credential", credential.Redacted()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to decode credential")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("credential has no subject")
	}

	decoded := &service.CredentialClaims{Subject: subject}

	if email, ok := claims["email"].(string); ok {
		decoded.Email = email
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		decoded.ExpiresAt = exp.Time
		if time.Now().After(exp.Time) {
			return nil, errors.New("credential expired")
		}
	}

	return decoded, nil
}
