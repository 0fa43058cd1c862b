package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"
)

type wishlistGateway struct {
	client *Client
	logger *slog.Logger
}

// NewWishlistGateway is the constructor for the wishlist gateway.
func NewWishlistGateway(client *Client, logger *slog.Logger) gateway.WishlistGateway {
	return &wishlistGateway{client: client, logger: logger}
}

func (g *wishlistGateway) Add(ctx context.Context, credential entity.Credential, line entity.WishlistLine) (*entity.WishlistLine, error) {
	payload := wishlistLineDTO{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Price:       line.Price,
		ImageURL:    line.ImageURL,
	}

	var dto wishlistLineDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/wishlist/add", nil, credential, payload, &dto); err != nil {
		return nil, translate(err)
	}

	stored := dto.toEntity()

	return &stored, nil
}

func (g *wishlistGateway) Remove(ctx context.Context, credential entity.Credential, productID string) error {
	err := g.client.do(ctx, http.MethodDelete, "/api/wishlist/remove/"+url.PathEscape(productID), nil, credential, nil, nil)

	return translate(err)
}
