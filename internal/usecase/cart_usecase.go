package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
)

// CartSummary is the cart projection returned after every view or mutation:
// the reconciled lines, the applied coupon and freshly derived totals.
type CartSummary struct {
	Lines  []entity.CartLine
	Coupon *entity.Coupon
	Totals entity.CartTotals
}

// CartUsecase drives the cart aggregate. Every mutation requires an
// authenticated session and synchronizes against the commerce API; the
// server response is the reconciliation source.
type CartUsecase interface {
	// Summary returns the current cart without any round trip.
	Summary(ctx context.Context, session *state.Session) (*CartSummary, error)

	// Add puts quantity units of the product into the cart. The product is
	// resolved at the session's pricing view to snapshot the unit price.
	Add(ctx context.Context, session *state.Session, productID string, quantity int) (*CartSummary, error)

	// AdjustQuantity applies a relative delta to an existing line. The
	// upstream decides the resulting quantity; an empty upstream response or
	// an unreachable upstream both drop the line locally.
	AdjustQuantity(ctx context.Context, session *state.Session, productID string, delta int) (*CartSummary, error)

	// Remove deletes the line. Unlike AdjustQuantity, a failed round trip
	// leaves the local aggregate untouched.
	Remove(ctx context.Context, session *state.Session, productID string) (*CartSummary, error)

	// ApplyCoupon validates the code upstream and stages the discount. A
	// rejection clears any staged coupon and surfaces the upstream reason.
	ApplyCoupon(ctx context.Context, session *state.Session, code string) (*CartSummary, error)
}
