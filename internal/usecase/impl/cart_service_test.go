package impl

import (
	"context"
	"testing"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartFixtures holds all test dependencies for cart service tests.
type cartFixtures struct {
	service  usecase.CartUsecase
	carts    *mockCartGateway
	products *mockProductGateway
	session  *state.Session
}

func createTestCartService(t *testing.T) cartFixtures {
	t.Helper()

	carts := &mockCartGateway{}
	products := &mockProductGateway{}
	sessions := NewSessionService(newTestConfig(), &mockAccountGateway{}, newFakeVerifier(),
		&memPreferences{}, &recordingEvents{}, state.NewRegistry(), newDiscardLogger())
	svc := NewCartService(carts, products, sessions, newDiscardLogger())

	session := state.NewSession()
	session.BeginResolving("token-abc")
	session.CompleteResolution(&entity.Profile{ID: "u1", Email: "buyer@example.com", Role: entity.RoleRetailer})

	return cartFixtures{service: svc, carts: carts, products: products, session: session}
}

func TestCartService_Add(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	product := &entity.Product{
		ID:            "p1",
		Name:          "Basmati",
		DiscountPrice: decimal.NewFromInt(100),
		ImageURL:      "img",
	}
	fixture.products.On("Get", ctx, "p1", entity.ViewRetailer).Return(product, nil)
	fixture.carts.On("Add", ctx, entity.Credential("token-abc"), entity.CartLine{
		ProductID:   "p1",
		ProductName: "Basmati",
		Price:       decimal.NewFromInt(100),
		ImageURL:    "img",
		Quantity:    2,
	}).Return(&entity.CartLine{
		ProductID:   "p1",
		ProductName: "Basmati",
		Price:       decimal.NewFromInt(100),
		ImageURL:    "img",
		Quantity:    2,
	}, nil)

	summary, err := fixture.service.Add(ctx, fixture.session, "p1", 2)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.True(t, summary.Totals.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.Totals.Total.Equal(decimal.NewFromInt(200)))
}

func TestCartService_Add_ServerMergesExistingLine(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	fixture.session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 1})
	})

	product := &entity.Product{ID: "p1", Name: "Basmati", DiscountPrice: decimal.NewFromInt(100)}
	fixture.products.On("Get", ctx, "p1", entity.ViewRetailer).Return(product, nil)
	// The server folds the add into the existing line and reports qty 3.
	fixture.carts.On("Add", ctx, entity.Credential("token-abc"), entity.CartLine{
		ProductID: "p1", ProductName: "Basmati", Price: decimal.NewFromInt(100), Quantity: 2,
	}).Return(&entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 3}, nil)

	summary, err := fixture.service.Add(ctx, fixture.session, "p1", 2)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 3, summary.Lines[0].Quantity)
}

func TestCartService_AdjustQuantity(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	fixture.session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 2})
	})
	fixture.carts.On("UpdateQuantity", ctx, entity.Credential("token-abc"), "p1", 1).
		Return(&entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 3}, nil)

	summary, err := fixture.service.AdjustQuantity(ctx, fixture.session, "p1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Lines[0].Quantity)
}

func TestCartService_AdjustQuantity_EmptyResponseRemovesLine(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	fixture.session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 1})
	})
	fixture.carts.On("UpdateQuantity", ctx, entity.Credential("token-abc"), "p1", -1).
		Return(nil, nil)

	summary, err := fixture.service.AdjustQuantity(ctx, fixture.session, "p1", -1)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}

func TestCartService_Remove(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	fixture.session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 2})
		cart.Coupon = &entity.Coupon{Code: "SAVE10", DiscountPercent: decimal.NewFromInt(10)}
	})
	fixture.carts.On("Remove", ctx, entity.Credential("token-abc"), "p1").Return(nil)

	summary, err := fixture.service.Remove(ctx, fixture.session, "p1")
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)

	// The coupon stays applied; it just discounts nothing.
	require.NotNil(t, summary.Coupon)
	assert.True(t, summary.Totals.Discount.IsZero())
	assert.True(t, summary.Totals.Total.IsZero())
}

func TestCartService_ApplyCoupon(t *testing.T) {
	fixture := createTestCartService(t)
	ctx := context.Background()

	fixture.session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 2})
	})
	fixture.carts.On("ApplyCoupon", ctx, entity.Credential("token-abc"), "SAVE10").
		Return(&entity.Coupon{Code: "SAVE10", DiscountPercent: decimal.NewFromInt(10)}, nil)

	summary, err := fixture.service.ApplyCoupon(ctx, fixture.session, "SAVE10")
	require.NoError(t, err)
	require.NotNil(t, summary.Coupon)
	assert.True(t, summary.Totals.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.Totals.Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, summary.Totals.Total.Equal(decimal.NewFromInt(180)))
}
