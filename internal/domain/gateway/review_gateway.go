package gateway

import (
	"context"

	"neocart/internal/domain/entity"
)

// ReviewGateway reads and writes product reviews.
type ReviewGateway interface {
	// List fetches all reviews for a product. Public, no credential needed.
	List(ctx context.Context, productID string) ([]entity.Review, error)

	// Create posts a review for the authenticated account.
	Create(ctx context.Context, credential entity.Credential, input entity.ReviewInput) (*entity.Review, error)
}
