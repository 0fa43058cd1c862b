package gateway

import (
	"context"
	"errors"

	"neocart/internal/domain/entity"
)

// ErrCredentialRejected is returned when the upstream declines the presented
// credential (expired, revoked or malformed).
var ErrCredentialRejected = errors.New("credential rejected by upstream")

// AccountGateway handles credential exchange and profile resolution.
type AccountGateway interface {
	// ExchangeToken trades the identity provider's ID token for the commerce
	// API's bearer credential. avatarURL is optional and only set on federated
	// sign-in flows that supply a picture.
	ExchangeToken(ctx context.Context, idToken string, avatarURL string) (entity.Credential, error)

	// FetchProfile resolves the account record for the credential. The
	// response embeds the server's current cart and wishlist snapshots.
	FetchProfile(ctx context.Context, credential entity.Credential) (*entity.Profile, error)

	// UpdateProfile modifies the saved contact fields and returns a fresh
	// credential; the session must re-resolve from it.
	UpdateProfile(ctx context.Context, credential entity.Credential, update entity.ProfileUpdate) (entity.Credential, error)
}
