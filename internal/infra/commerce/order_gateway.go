package commerce

import (
	"context"
	"log/slog"
	"net/http"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/shopspring/decimal"
)

type orderGateway struct {
	client *Client
	logger *slog.Logger
}

// NewOrderGateway is the constructor for the order gateway.
func NewOrderGateway(client *Client, logger *slog.Logger) gateway.OrderGateway {
	return &orderGateway{client: client, logger: logger}
}

type checkoutPayload struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Pincode    string          `json:"pincode"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (g *orderGateway) Checkout(ctx context.Context, credential entity.Credential, input entity.OrderInput) (*entity.Order, error) {
	payload := checkoutPayload{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		Pincode:    input.Pincode,
		TotalPrice: input.TotalPrice,
	}

	var dto orderDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/orders/checkout", nil, credential, payload, &dto); err != nil {
		return nil, translate(err)
	}

	order := dto.toEntity()

	return &order, nil
}

func (g *orderGateway) History(ctx context.Context, credential entity.Credential) ([]entity.Order, error) {
	var dtos []orderDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/orders/me", nil, credential, nil, &dtos); err != nil {
		return nil, translate(err)
	}

	orders := make([]entity.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, dto.toEntity())
	}

	return orders, nil
}
