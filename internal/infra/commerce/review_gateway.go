package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"
)

type reviewGateway struct {
	client *Client
	logger *slog.Logger
}

// NewReviewGateway is the constructor for the review gateway.
func NewReviewGateway(client *Client, logger *slog.Logger) gateway.ReviewGateway {
	return &reviewGateway{client: client, logger: logger}
}

func (g *reviewGateway) List(ctx context.Context, productID string) ([]entity.Review, error) {
	var dtos []reviewDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/reviews/"+url.PathEscape(productID), nil, "", nil, &dtos); err != nil {
		return nil, translate(err)
	}

	reviews := make([]entity.Review, 0, len(dtos))
	for _, dto := range dtos {
		reviews = append(reviews, dto.toEntity())
	}

	return reviews, nil
}

func (g *reviewGateway) Create(ctx context.Context, credential entity.Credential, input entity.ReviewInput) (*entity.Review, error) {
	payload := map[string]any{
		"product_id": input.ProductID,
		"rating":     input.Rating,
		"comment":    input.Comment,
	}

	var dto reviewDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/reviews", nil, credential, payload, &dto); err != nil {
		return nil, translate(err)
	}

	review := dto.toEntity()

	return &review, nil
}
