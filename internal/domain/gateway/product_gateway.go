// Package gateway defines the interfaces for the remote commerce API.
// These interfaces act as a contract between the domain/application layers
// and the HTTP infrastructure that talks to the upstream.
package gateway

import (
	"context"
	"errors"

	"neocart/internal/domain/entity"
)

// ErrProductNotFound is returned when the upstream has no such product.
var ErrProductNotFound = errors.New("product not found")

// ProductGateway fetches product view projections. Listing and detail calls
// carry the resolved price view; they never mutate server state.
type ProductGateway interface {
	// List fetches one page of products for the query's view, offset, limit
	// and optional search term.
	List(ctx context.Context, query entity.ProductQuery) ([]entity.Product, error)

	// Get fetches a single product resolved for the given price view.
	Get(ctx context.Context, id string, view entity.PriceView) (*entity.Product, error)
}
