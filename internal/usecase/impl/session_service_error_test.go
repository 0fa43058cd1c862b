package impl

import (
	"context"
	"testing"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/domain/service"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Login_ExchangeRejected(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.accounts.On("ExchangeToken", ctx, "bad-token", "").
		Return(entity.Credential(""), errors.Wrap(gateway.ErrCredentialRejected, "Invalid ID token"))

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "bad-token"})
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assert.Equal(t, 0, fixture.registry.Len())
}

func TestSessionService_Login_ResolutionFailureResetsSession(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).
		Return(nil, errors.New("upstream unreachable"))

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.Error(t, err)

	// No half-resolved session survives the failure.
	assert.Equal(t, 0, fixture.registry.Len())
	require.NotEmpty(t, fixture.events.events)
	assert.Equal(t, service.SessionLogout, fixture.events.events[len(fixture.events.events)-1].Type)
}

func TestSessionService_Login_RejectedCredentialOnResolve(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).
		Return(nil, errors.Wrap(gateway.ErrCredentialRejected, "expired"))

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestSessionService_SetAdminView_NonAdminForbidden(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	session, _ := fixture.registry.Get("u1")

	err = fixture.service.SetAdminView(ctx, session, entity.ViewWholesaler)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, entity.ViewRetailer, fixture.service.EffectiveView(session))
}

func TestSessionService_SetAdminView_InvalidView(t *testing.T) {
	fixture := createTestSessionService(t)

	session := fixture.registry.GetOrCreate("a1")
	err := fixture.service.SetAdminView(context.Background(), session, entity.PriceView("vip"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_UpdateProfile_RequiresSession(t *testing.T) {
	fixture := createTestSessionService(t)

	session := fixture.registry.GetOrCreate("u1")
	_, err := fixture.service.UpdateProfile(context.Background(), session, &usecase.UpdateProfileInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestSessionService_SetTheme_InvalidValue(t *testing.T) {
	fixture := createTestSessionService(t)

	err := fixture.service.SetTheme(context.Background(), service.Theme("sepia"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
