package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
)

// CheckoutInput carries the shipping details for order placement.
type CheckoutInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// OrderConfirmation is the checkout result: the placed order and a QR code
// pointing at its confirmation page.
type OrderConfirmation struct {
	Order  *entity.Order
	QRCode []byte
}

// OrderUsecase places orders and reads order history.
type OrderUsecase interface {
	// Checkout places the order for the cart's current total and clears the
	// local cart on acceptance.
	Checkout(ctx context.Context, session *state.Session, input *CheckoutInput) (*OrderConfirmation, error)

	// History lists the account's past orders.
	History(ctx context.Context, session *state.Session) ([]entity.Order, error)
}
