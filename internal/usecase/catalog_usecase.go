package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"
)

// ProductDetail bundles a product with its reviews for the detail page.
type ProductDetail struct {
	Product *entity.Product
	Reviews []entity.Review
}

// CatalogUsecase serves the product feed and product detail views. Every
// fetch re-derives the pricing view from the session; accumulated pages are
// discarded whenever the view or the search term changes.
type CatalogUsecase interface {
	// Browse returns the feed for the session's current view and the given
	// search term, fetching the first page when the feed is empty or stale.
	Browse(ctx context.Context, session *state.Session, search string) (*entity.Feed, error)

	// LoadMore fetches the next page into the feed. It is a no-op when the
	// feed is exhausted.
	LoadMore(ctx context.Context, session *state.Session, search string) (*entity.Feed, error)

	// Detail fetches one product resolved for the session's view, together
	// with its reviews.
	Detail(ctx context.Context, session *state.Session, productID string) (*ProductDetail, error)
}
