package impl

import (
	"context"
	"log/slog"

	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviews gateway.ReviewGateway
	logger  *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(reviews gateway.ReviewGateway, logger *slog.Logger) usecase.ReviewUsecase {
	return &reviewService{reviews: reviews, logger: logger}
}

// List fetches all reviews for a product. Public, no session needed.
func (srv *reviewService) List(ctx context.Context, productID string) ([]entity.Review, error) {
	reviews, err := srv.reviews.List(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch reviews")
	}

	return reviews, nil
}

// Create posts a review for the session's account.
func (srv *reviewService) Create(ctx context.Context, session *state.Session, input *usecase.CreateReviewInput) (*entity.Review, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviews.Create(ctx, credential, entity.ReviewInput{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrCredentialRejected) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
		}

		var rejection *gateway.RejectionError
		if errors.As(err, &rejection) {
			return nil, domainerrors.ErrUpstreamRejected.WithDetails(rejection.Reason)
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.logger.Info("Review posted", slog.String("productID", input.ProductID), slog.Int("rating", input.Rating))

	return review, nil
}
