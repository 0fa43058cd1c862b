package gateway

import (
	"context"

	"neocart/internal/domain/entity"
)

// CartGateway performs cart mutations against the commerce API. Every call
// carries the current bearer credential; the server response is always the
// reconciliation source.
type CartGateway interface {
	// Add sends the product identity, price snapshot and display fields. The
	// returned line is authoritative: the server decides whether the add
	// created a new line or incremented an existing one.
	Add(ctx context.Context, credential entity.Credential, line entity.CartLine) (*entity.CartLine, error)

	// UpdateQuantity sends a relative delta, not an absolute value; the server
	// computes the resulting quantity. A nil line with nil error means the
	// server removed the line.
	UpdateQuantity(ctx context.Context, credential entity.Credential, productID string, delta int) (*entity.CartLine, error)

	// Remove deletes the line server-side.
	Remove(ctx context.Context, credential entity.Credential, productID string) error

	// ApplyCoupon validates the code server-side and returns the coupon, or a
	// RejectionError carrying the server's reason verbatim.
	ApplyCoupon(ctx context.Context, credential entity.Credential, code string) (*entity.Coupon, error)
}
