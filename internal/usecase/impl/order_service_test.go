package impl

import (
	"context"
	"testing"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderFixtures holds all test dependencies for order service tests.
type orderFixtures struct {
	service usecase.OrderUsecase
	orders  *mockOrderGateway
	qrcodes *fakeQRCodes
	session *state.Session
}

func createTestOrderService(t *testing.T) orderFixtures {
	t.Helper()

	orders := &mockOrderGateway{}
	qrcodes := &fakeQRCodes{}
	svc := NewOrderService(orders, qrcodes, newDiscardLogger())

	session := state.NewSession()
	session.BeginResolving("token-abc")
	session.CompleteResolution(&entity.Profile{ID: "u1", Email: "buyer@example.com"})
	session.UpdateCart(func(cart *entity.Cart) {
		cart.Reconcile(entity.CartLine{ProductID: "p1", Price: decimal.NewFromInt(100), Quantity: 2})
		cart.Coupon = &entity.Coupon{Code: "SAVE10", DiscountPercent: decimal.NewFromInt(10)}
	})

	return orderFixtures{service: svc, orders: orders, qrcodes: qrcodes, session: session}
}

func checkoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Name: "Buyer", Email: "buyer@example.com", Phone: "123",
		Address: "1 Main St", City: "Pune", Pincode: "411001",
	}
}

func TestOrderService_Checkout(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()

	// 200 subtotal with a 10% coupon: the discounted total goes upstream.
	fixture.orders.On("Checkout", ctx, entity.Credential("token-abc"), entity.OrderInput{
		Name: "Buyer", Email: "buyer@example.com", Phone: "123",
		Address: "1 Main St", City: "Pune", Pincode: "411001",
		TotalPrice: decimal.NewFromInt(180),
	}).Return(&entity.Order{ID: "o1", Status: "placed"}, nil)

	confirmation, err := fixture.service.Checkout(ctx, fixture.session, checkoutInput())
	require.NoError(t, err)
	assert.Equal(t, "o1", confirmation.Order.ID)
	assert.Equal(t, []byte("qr:o1"), confirmation.QRCode)

	// The local cart follows the upstream clear.
	lines, coupon, _ := fixture.session.CartView()
	assert.Empty(t, lines)
	assert.Nil(t, coupon)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fixture := createTestOrderService(t)
	fixture.session.UpdateCart(func(cart *entity.Cart) { cart.Clear() })

	_, err := fixture.service.Checkout(context.Background(), fixture.session, checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fixture.orders.AssertNotCalled(t, "Checkout")
}

func TestOrderService_Checkout_UpstreamFailureKeepsCart(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()

	fixture.orders.On("Checkout", ctx, entity.Credential("token-abc"), entity.OrderInput{
		Name: "Buyer", Email: "buyer@example.com", Phone: "123",
		Address: "1 Main St", City: "Pune", Pincode: "411001",
		TotalPrice: decimal.NewFromInt(180),
	}).Return(nil, errors.New("connection refused"))

	_, err := fixture.service.Checkout(ctx, fixture.session, checkoutInput())
	require.Error(t, err)

	lines, _, _ := fixture.session.CartView()
	assert.Len(t, lines, 1)
}

func TestOrderService_Checkout_QRFailureIsNotFatal(t *testing.T) {
	fixture := createTestOrderService(t)
	fixture.qrcodes.fail = true
	ctx := context.Background()

	fixture.orders.On("Checkout", ctx, entity.Credential("token-abc"), entity.OrderInput{
		Name: "Buyer", Email: "buyer@example.com", Phone: "123",
		Address: "1 Main St", City: "Pune", Pincode: "411001",
		TotalPrice: decimal.NewFromInt(180),
	}).Return(&entity.Order{ID: "o1"}, nil)

	confirmation, err := fixture.service.Checkout(ctx, fixture.session, checkoutInput())
	require.NoError(t, err)
	assert.Nil(t, confirmation.QRCode)
}

func TestOrderService_Checkout_Rejected(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()

	fixture.orders.On("Checkout", ctx, entity.Credential("token-abc"), entity.OrderInput{
		Name: "Buyer", Email: "buyer@example.com", Phone: "123",
		Address: "1 Main St", City: "Pune", Pincode: "411001",
		TotalPrice: decimal.NewFromInt(180),
	}).Return(nil, &gateway.RejectionError{Reason: "Cart is empty"})

	_, err := fixture.service.Checkout(ctx, fixture.session, checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamRejected)
}

func TestOrderService_History(t *testing.T) {
	fixture := createTestOrderService(t)
	ctx := context.Background()

	fixture.orders.On("History", ctx, entity.Credential("token-abc")).
		Return([]entity.Order{{ID: "o1"}, {ID: "o2"}}, nil)

	orders, err := fixture.service.History(ctx, fixture.session)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_History_Unauthenticated(t *testing.T) {
	fixture := createTestOrderService(t)

	_, err := fixture.service.History(context.Background(), state.NewSession())
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}
