package gateway

import (
	"context"

	"neocart/internal/domain/entity"
)

// WishlistGateway performs wishlist mutations against the commerce API.
// The upstream does not enforce uniqueness on add; duplicate detection is the
// caller's job.
type WishlistGateway interface {
	// Add saves the line server-side and returns the stored line.
	Add(ctx context.Context, credential entity.Credential, line entity.WishlistLine) (*entity.WishlistLine, error)

	// Remove deletes the line server-side.
	Remove(ctx context.Context, credential entity.Credential, productID string) error
}
