package gateway

import (
	"context"

	"neocart/internal/domain/entity"
)

// OrderGateway places orders and reads order history.
type OrderGateway interface {
	// Checkout places the order. Accepting the order clears the server-side
	// cart as a side effect; the caller clears the local aggregate.
	Checkout(ctx context.Context, credential entity.Credential, input entity.OrderInput) (*entity.Order, error)

	// History lists the account's past orders.
	History(ctx context.Context, credential entity.Credential) ([]entity.Order, error)
}
