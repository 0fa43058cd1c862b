package impl

import (
	"context"
	"io"
	"log/slog"

	"neocart/config"
	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"
	"neocart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Commerce: &config.CommerceConfig{BaseURL: "http://upstream.test"},
		Identity: &config.IdentityConfig{AdminEmail: "admin@neocart.example"},
		Catalog:  &config.CatalogConfig{InitialPageSize: 8, ScrollPageSize: 4},
	}

	return cfg
}

// fakeVerifier decodes by table lookup.
type fakeVerifier struct {
	claims map[entity.Credential]*service.CredentialClaims
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{claims: make(map[entity.Credential]*service.CredentialClaims)}
}

func (v *fakeVerifier) allow(credential entity.Credential, subject string) {
	v.claims[credential] = &service.CredentialClaims{Subject: subject}
}

func (v *fakeVerifier) Decode(credential entity.Credential) (*service.CredentialClaims, error) {
	claims, ok := v.claims[credential]
	if !ok {
		return nil, errors.New("failed to decode credential")
	}

	return claims, nil
}

// memPreferences is an in-memory PreferenceStore.
type memPreferences struct {
	credential *entity.Credential
	theme      *service.Theme
	saveErr    error
}

func (p *memPreferences) SaveCredential(_ context.Context, credential entity.Credential) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.credential = &credential

	return nil
}

func (p *memPreferences) LoadCredential(context.Context) (entity.Credential, error) {
	if p.credential == nil {
		return "", service.ErrPreferenceNotFound
	}

	return *p.credential, nil
}

func (p *memPreferences) ClearCredential(context.Context) error {
	p.credential = nil

	return nil
}

func (p *memPreferences) SaveTheme(_ context.Context, theme service.Theme) error {
	p.theme = &theme

	return nil
}

func (p *memPreferences) LoadTheme(context.Context) (service.Theme, error) {
	if p.theme == nil {
		return "", service.ErrPreferenceNotFound
	}

	return *p.theme, nil
}

// recordingEvents captures published session events and, like the real bus,
// delivers them synchronously to subscribers.
type recordingEvents struct {
	events   []service.SessionEvent
	handlers []func(ctx context.Context, event service.SessionEvent)
}

func (r *recordingEvents) Publish(ctx context.Context, event service.SessionEvent) {
	r.events = append(r.events, event)
	for _, handler := range r.handlers {
		handler(ctx, event)
	}
}

func (r *recordingEvents) Subscribe(handler func(ctx context.Context, event service.SessionEvent)) {
	r.handlers = append(r.handlers, handler)
}

type mockAccountGateway struct {
	mock.Mock
}

func (m *mockAccountGateway) ExchangeToken(ctx context.Context, idToken string, avatarURL string) (entity.Credential, error) {
	args := m.Called(ctx, idToken, avatarURL)

	return args.Get(0).(entity.Credential), args.Error(1)
}

func (m *mockAccountGateway) FetchProfile(ctx context.Context, credential entity.Credential) (*entity.Profile, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockAccountGateway) UpdateProfile(ctx context.Context, credential entity.Credential, update entity.ProfileUpdate) (entity.Credential, error) {
	args := m.Called(ctx, credential, update)

	return args.Get(0).(entity.Credential), args.Error(1)
}

type mockProductGateway struct {
	mock.Mock
}

func (m *mockProductGateway) List(ctx context.Context, query entity.ProductQuery) ([]entity.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *mockProductGateway) Get(ctx context.Context, id string, view entity.PriceView) (*entity.Product, error) {
	args := m.Called(ctx, id, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

type mockCartGateway struct {
	mock.Mock
}

func (m *mockCartGateway) Add(ctx context.Context, credential entity.Credential, line entity.CartLine) (*entity.CartLine, error) {
	args := m.Called(ctx, credential, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartLine), args.Error(1)
}

func (m *mockCartGateway) UpdateQuantity(ctx context.Context, credential entity.Credential, productID string, delta int) (*entity.CartLine, error) {
	args := m.Called(ctx, credential, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartLine), args.Error(1)
}

func (m *mockCartGateway) Remove(ctx context.Context, credential entity.Credential, productID string) error {
	args := m.Called(ctx, credential, productID)

	return args.Error(0)
}

func (m *mockCartGateway) ApplyCoupon(ctx context.Context, credential entity.Credential, code string) (*entity.Coupon, error) {
	args := m.Called(ctx, credential, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Coupon), args.Error(1)
}

type mockWishlistGateway struct {
	mock.Mock
}

func (m *mockWishlistGateway) Add(ctx context.Context, credential entity.Credential, line entity.WishlistLine) (*entity.WishlistLine, error) {
	args := m.Called(ctx, credential, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.WishlistLine), args.Error(1)
}

func (m *mockWishlistGateway) Remove(ctx context.Context, credential entity.Credential, productID string) error {
	args := m.Called(ctx, credential, productID)

	return args.Error(0)
}

type mockOrderGateway struct {
	mock.Mock
}

func (m *mockOrderGateway) Checkout(ctx context.Context, credential entity.Credential, input entity.OrderInput) (*entity.Order, error) {
	args := m.Called(ctx, credential, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *mockOrderGateway) History(ctx context.Context, credential entity.Credential) ([]entity.Order, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Order), args.Error(1)
}

type mockReviewGateway struct {
	mock.Mock
}

func (m *mockReviewGateway) List(ctx context.Context, productID string) ([]entity.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *mockReviewGateway) Create(ctx context.Context, credential entity.Credential, input entity.ReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, credential, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

type mockAdminGateway struct {
	mock.Mock
}

func (m *mockAdminGateway) CreateProduct(ctx context.Context, credential entity.Credential, input entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, credential, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockAdminGateway) UpdateProduct(ctx context.Context, credential entity.Credential, id string, input entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, credential, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockAdminGateway) DeleteProduct(ctx context.Context, credential entity.Credential, id string) error {
	args := m.Called(ctx, credential, id)

	return args.Error(0)
}

func (m *mockAdminGateway) DeleteAllProducts(ctx context.Context, credential entity.Credential) (int, error) {
	args := m.Called(ctx, credential)

	return args.Int(0), args.Error(1)
}

func (m *mockAdminGateway) ListUsers(ctx context.Context, credential entity.Credential) ([]entity.Profile, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Profile), args.Error(1)
}

func (m *mockAdminGateway) VerifyUser(ctx context.Context, credential entity.Credential, userID string) error {
	args := m.Called(ctx, credential, userID)

	return args.Error(0)
}

func (m *mockAdminGateway) UploadCatalog(ctx context.Context, credential entity.Credential, filename string, data []byte) (int, error) {
	args := m.Called(ctx, credential, filename, data)

	return args.Int(0), args.Error(1)
}

func (m *mockAdminGateway) DownloadCatalog(ctx context.Context, credential entity.Credential) ([]byte, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// fakeQRCodes returns a fixed payload.
type fakeQRCodes struct {
	fail bool
}

func (f *fakeQRCodes) GenerateOrderQR(orderID string) ([]byte, error) {
	if f.fail {
		return nil, errors.New("qr encode failed")
	}

	return []byte("qr:" + orderID), nil
}

// Interface guards for the test doubles.
var (
	_ service.CredentialVerifier = (*fakeVerifier)(nil)
	_ service.PreferenceStore    = (*memPreferences)(nil)
	_ service.SessionEvents      = (*recordingEvents)(nil)
	_ gateway.AccountGateway     = (*mockAccountGateway)(nil)
	_ gateway.ProductGateway     = (*mockProductGateway)(nil)
	_ gateway.CartGateway        = (*mockCartGateway)(nil)
	_ gateway.WishlistGateway    = (*mockWishlistGateway)(nil)
	_ gateway.OrderGateway       = (*mockOrderGateway)(nil)
	_ gateway.ReviewGateway      = (*mockReviewGateway)(nil)
	_ gateway.AdminGateway       = (*mockAdminGateway)(nil)
	_ service.QRCodeService      = (*fakeQRCodes)(nil)
)
