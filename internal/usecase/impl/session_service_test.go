package impl

import (
	"context"
	"testing"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/service"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionFixtures holds all test dependencies for session service tests.
type sessionFixtures struct {
	service  usecase.SessionUsecase
	accounts *mockAccountGateway
	verifier *fakeVerifier
	prefs    *memPreferences
	events   *recordingEvents
	registry *state.Registry
}

func createTestSessionService(t *testing.T) sessionFixtures {
	t.Helper()

	accounts := &mockAccountGateway{}
	verifier := newFakeVerifier()
	prefs := &memPreferences{}
	events := &recordingEvents{}
	registry := state.NewRegistry()
	svc := NewSessionService(newTestConfig(), accounts, verifier, prefs, events, registry, newDiscardLogger())
	RegisterSessionSubscribers(events, registry, newDiscardLogger())

	return sessionFixtures{
		service:  svc,
		accounts: accounts,
		verifier: verifier,
		prefs:    prefs,
		events:   events,
		registry: registry,
	}
}

func buyerProfile() *entity.Profile {
	return &entity.Profile{
		ID:    "u1",
		Email: "buyer@example.com",
		Role:  entity.RoleRetailer,
		CartLines: []entity.CartLine{
			{ProductID: "p1", Price: decimal.NewFromInt(50), Quantity: 2},
		},
		WishlistLines: []entity.WishlistLine{{ProductID: "p2"}},
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	view, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseAuthenticated, view.Phase)
	assert.False(t, view.IsAdmin)
	assert.Equal(t, entity.ViewRetailer, view.View)

	// The session was created, seeded from the profile snapshots and keyed
	// by the credential subject.
	session, ok := fixture.registry.Get("u1")
	require.True(t, ok)
	lines, _, totals := session.CartView()
	require.Len(t, lines, 1)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.Len(t, session.WishlistView(), 1)

	// The credential was persisted for restarts.
	saved, err := fixture.prefs.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Credential("token-abc"), saved)

	require.Len(t, fixture.events.events, 1)
	assert.Equal(t, service.SessionLogin, fixture.events.events[0].Type)
	require.NotNil(t, fixture.events.events[0].Profile)
}

func TestSessionService_Login_AdminViewDerivation(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	admin := &entity.Profile{ID: "a1", Email: "admin@neocart.example", Role: entity.RoleRetailer}
	fixture.verifier.allow("token-admin", "a1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-admin"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-admin")).Return(admin, nil)

	view, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.True(t, view.IsAdmin)
	assert.Equal(t, entity.ViewRetailer, view.View)

	session, _ := fixture.registry.Get("a1")
	require.NoError(t, fixture.service.SetAdminView(ctx, session, entity.ViewWholesaler))
	assert.Equal(t, entity.ViewWholesaler, fixture.service.EffectiveView(session))
}

func TestSessionService_Restore_NothingPersisted(t *testing.T) {
	fixture := createTestSessionService(t)

	view, err := fixture.service.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseUnauthenticated, view.Phase)
	assert.Equal(t, entity.ViewRetailer, view.View)
	assert.Equal(t, 0, fixture.registry.Len())
}

func TestSessionService_Restore_ReplaysPersistedCredential(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, fixture.prefs.SaveCredential(ctx, "token-abc"))
	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	view, err := fixture.service.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseAuthenticated, view.Phase)
	assert.Equal(t, 1, fixture.registry.Len())
}

func TestSessionService_Restore_StaleCredentialIsSilent(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	// Not registered with the verifier: decoding fails as for a garbled token.
	require.NoError(t, fixture.prefs.SaveCredential(ctx, "token-stale"))

	view, err := fixture.service.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseUnauthenticated, view.Phase)

	_, err = fixture.prefs.LoadCredential(ctx)
	assert.ErrorIs(t, err, service.ErrPreferenceNotFound)
}

func TestSessionService_Logout(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	session, _ := fixture.registry.Get("u1")

	require.NoError(t, fixture.service.Logout(ctx, session))

	assert.Equal(t, entity.PhaseUnauthenticated, session.Phase())
	assert.Equal(t, 0, fixture.registry.Len())
	_, err = fixture.prefs.LoadCredential(ctx)
	assert.ErrorIs(t, err, service.ErrPreferenceNotFound)
	assert.Equal(t, service.SessionLogout, fixture.events.events[len(fixture.events.events)-1].Type)
}

func TestSessionService_LogoutEventEvictsSessionFromRegistry(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	require.Equal(t, 1, fixture.registry.Len())
	session, _ := fixture.registry.Get("u1")

	// The registry eviction travels through the event bus: the logout event
	// names the subject and the subscriber drops the container.
	require.NoError(t, fixture.service.Logout(ctx, session))

	last := fixture.events.events[len(fixture.events.events)-1]
	assert.Equal(t, service.SessionLogout, last.Type)
	assert.Equal(t, "u1", last.Subject)
	_, held := fixture.registry.Get("u1")
	assert.False(t, held)
}

func TestSessionService_UpdateProfile_RotatesCredential(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	fixture.verifier.allow("token-abc", "u1")
	fixture.verifier.allow("token-rotated", "u1")
	fixture.accounts.On("ExchangeToken", ctx, "id-token", "").Return(entity.Credential("token-abc"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-abc")).Return(buyerProfile(), nil)

	_, err := fixture.service.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	session, _ := fixture.registry.Get("u1")

	updated := buyerProfile()
	updated.Name = "New Name"
	fixture.accounts.On("UpdateProfile", ctx, entity.Credential("token-abc"), entity.ProfileUpdate{
		Name: "New Name", Phone: "123", Address: "A", City: "C", Pincode: "000001",
	}).Return(entity.Credential("token-rotated"), nil)
	fixture.accounts.On("FetchProfile", ctx, entity.Credential("token-rotated")).Return(updated, nil)

	view, err := fixture.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{
		Name: "New Name", Phone: "123", Address: "A", City: "C", Pincode: "000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", view.Profile.Name)
	assert.Equal(t, entity.Credential("token-rotated"), session.Credential())

	saved, err := fixture.prefs.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Credential("token-rotated"), saved)
}

func TestSessionService_Theme(t *testing.T) {
	fixture := createTestSessionService(t)
	ctx := context.Background()

	theme, err := fixture.service.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ThemeDark, theme)

	require.NoError(t, fixture.service.SetTheme(ctx, service.ThemeLight))
	theme, err = fixture.service.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.ThemeLight, theme)
}
