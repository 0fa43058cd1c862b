package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
)

// WishlistUsecase drives the wishlist aggregate. Uniqueness by product is a
// client-side rule; the upstream accepts duplicate adds.
type WishlistUsecase interface {
	// Lines returns the saved lines.
	Lines(ctx context.Context, session *state.Session) ([]entity.WishlistLine, error)

	// Add saves the product upstream and appends it locally. Adding a
	// product that is already saved reports ErrAlreadyInWishlist after the
	// round trip; the aggregate stays unchanged.
	Add(ctx context.Context, session *state.Session, productID string) ([]entity.WishlistLine, error)

	// Remove deletes the line. A failed round trip leaves the aggregate
	// untouched.
	Remove(ctx context.Context, session *state.Session, productID string) ([]entity.WishlistLine, error)

	// MoveToCart adds the saved product to the cart, then removes it from
	// the wishlist. The two steps are separate round trips: a failed removal
	// leaves the product in both aggregates.
	MoveToCart(ctx context.Context, session *state.Session, productID string) (*CartSummary, error)
}
