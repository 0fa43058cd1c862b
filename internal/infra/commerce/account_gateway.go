package commerce

import (
	"context"
	"log/slog"
	"net/http"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/pkg/errors"
)

type accountGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAccountGateway is the constructor for the account gateway.
func NewAccountGateway(client *Client, logger *slog.Logger) gateway.AccountGateway {
	return &accountGateway{client: client, logger: logger}
}

func (g *accountGateway) ExchangeToken(ctx context.Context, idToken string, avatarURL string) (entity.Credential, error) {
	payload := map[string]string{"token": idToken}
	if avatarURL != "" {
		payload["dp_url"] = avatarURL
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := g.client.do(ctx, http.MethodPost, "/api/auth/firebase-login", nil, "", payload, &resp); err != nil {
		return "", translate(err)
	}
	if resp.AccessToken == "" {
		return "", errors.New("token exchange returned no access token")
	}

	return entity.Credential(resp.AccessToken), nil
}

func (g *accountGateway) FetchProfile(ctx context.Context, credential entity.Credential) (*entity.Profile, error) {
	var dto profileDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/users/me", nil, credential, nil, &dto); err != nil {
		return nil, translate(err)
	}

	return dto.toEntity(), nil
}

func (g *accountGateway) UpdateProfile(ctx context.Context, credential entity.Credential, update entity.ProfileUpdate) (entity.Credential, error) {
	payload := map[string]string{
		"name":    update.Name,
		"phone":   update.Phone,
		"address": update.Address,
		"city":    update.City,
		"pincode": update.Pincode,
	}

	// A profile change invalidates the old credential; the upstream mints a
	// replacement in the same response.
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := g.client.do(ctx, http.MethodPut, "/api/users/me", nil, credential, payload, &resp); err != nil {
		return "", translate(err)
	}
	if resp.AccessToken == "" {
		return "", errors.New("profile update returned no access token")
	}

	return entity.Credential(resp.AccessToken), nil
}
