package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
)

// CreateReviewInput carries a new product review.
type CreateReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// ReviewUsecase reads and writes product reviews. Reading is public; writing
// requires an authenticated session.
type ReviewUsecase interface {
	// List fetches all reviews for a product.
	List(ctx context.Context, productID string) ([]entity.Review, error)

	// Create posts a review for the session's account.
	Create(ctx context.Context, session *state.Session, input *CreateReviewInput) (*entity.Review, error)
}
