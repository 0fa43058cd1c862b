package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/pkg/errors"
)

type productGateway struct {
	client *Client
	logger *slog.Logger
}

// NewProductGateway is the constructor for the product gateway.
func NewProductGateway(client *Client, logger *slog.Logger) gateway.ProductGateway {
	return &productGateway{client: client, logger: logger}
}

func (g *productGateway) List(ctx context.Context, query entity.ProductQuery) ([]entity.Product, error) {
	values := url.Values{}
	values.Set("user_role", query.View.String())
	values.Set("skip", strconv.Itoa(query.Skip))
	values.Set("limit", strconv.Itoa(query.Limit))
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	var page []productDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/products", values, "", nil, &page); err != nil {
		return nil, translate(err)
	}

	products := make([]entity.Product, 0, len(page))
	for _, dto := range page {
		products = append(products, dto.toEntity())
	}

	return products, nil
}

func (g *productGateway) Get(ctx context.Context, id string, view entity.PriceView) (*entity.Product, error) {
	values := url.Values{}
	values.Set("user_role", view.String())

	var dto productDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), values, "", nil, &dto); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, errors.Wrapf(gateway.ErrProductNotFound, "product %s", id)
		}

		return nil, translate(err)
	}

	product := dto.toEntity()

	return &product, nil
}
