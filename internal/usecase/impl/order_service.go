package impl

import (
	"context"
	"log/slog"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/domain/service"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders  gateway.OrderGateway
	qrcodes service.QRCodeService
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders gateway.OrderGateway,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:  orders,
		qrcodes: qrcodes,
		logger:  logger,
	}
}

// Checkout places the order for the cart's current total.
func (srv *orderService) Checkout(ctx context.Context, session *state.Session, input *usecase.CheckoutInput) (*usecase.OrderConfirmation, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	lines, _, totals := session.CartView()
	if len(lines) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cart is empty")
	}

	srv.logger.Info("Placing order", slog.Int("lines", len(lines)), slog.String("total", totals.Total.String()))

	order, err := srv.orders.Checkout(ctx, credential, entity.OrderInput{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		Pincode:    input.Pincode,
		TotalPrice: totals.Total,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		var rejection *gateway.RejectionError
		if errors.As(err, &rejection) {
			return nil, domainerrors.ErrUpstreamRejected.WithDetails(rejection.Reason)
		}

		return nil, errors.Wrap(err, "failed to place order")
	}

	// The upstream cleared its cart copy when it accepted the order; the
	// local aggregate follows.
	session.UpdateCart(func(cart *entity.Cart) {
		cart.Clear()
	})

	confirmation := &usecase.OrderConfirmation{Order: order}
	if qr, err := srv.qrcodes.GenerateOrderQR(order.ID); err != nil {
		srv.logger.Warn("Failed to generate order QR code", slog.String("orderID", order.ID), slog.Any("error", err))
	} else {
		confirmation.QRCode = qr
	}

	srv.logger.Info("Order placed", slog.String("orderID", order.ID))

	return confirmation, nil
}

// History lists the account's past orders.
func (srv *orderService) History(ctx context.Context, session *state.Session) ([]entity.Order, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orders.History(ctx, credential)
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		return nil, errors.Wrap(err, "failed to fetch order history")
	}

	return orders, nil
}
