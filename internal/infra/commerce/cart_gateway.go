package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"
)

type cartGateway struct {
	client *Client
	logger *slog.Logger
}

// NewCartGateway is the constructor for the cart gateway.
func NewCartGateway(client *Client, logger *slog.Logger) gateway.CartGateway {
	return &cartGateway{client: client, logger: logger}
}

func (g *cartGateway) Add(ctx context.Context, credential entity.Credential, line entity.CartLine) (*entity.CartLine, error) {
	payload := cartLineDTO{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Price:       line.Price,
		ImageURL:    line.ImageURL,
		Quantity:    line.Quantity,
	}

	var dto cartLineDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/cart/add", nil, credential, payload, &dto); err != nil {
		return nil, translate(err)
	}

	stored := dto.toEntity()

	return &stored, nil
}

func (g *cartGateway) UpdateQuantity(ctx context.Context, credential entity.Credential, productID string, delta int) (*entity.CartLine, error) {
	values := url.Values{}
	values.Set("product_id", productID)
	values.Set("amount", strconv.Itoa(delta))

	// The upstream returns the updated line, or an empty body when the
	// adjustment dropped the quantity to zero and the line was removed.
	var dto cartLineDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/cart/update", values, credential, nil, &dto); err != nil {
		return nil, translate(err)
	}
	if dto.ProductID == "" {
		return nil, nil
	}

	updated := dto.toEntity()

	return &updated, nil
}

func (g *cartGateway) Remove(ctx context.Context, credential entity.Credential, productID string) error {
	err := g.client.do(ctx, http.MethodDelete, "/api/cart/remove/"+url.PathEscape(productID), nil, credential, nil, nil)

	return translate(err)
}

func (g *cartGateway) ApplyCoupon(ctx context.Context, credential entity.Credential, code string) (*entity.Coupon, error) {
	payload := map[string]string{"code": code}

	var dto couponDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/cart/apply-coupon", nil, credential, payload, &dto); err != nil {
		return nil, translate(err)
	}

	return &entity.Coupon{Code: dto.Code, DiscountPercent: dto.DiscountPercent}, nil
}
