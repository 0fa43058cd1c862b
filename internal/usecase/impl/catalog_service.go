package impl

import (
	"context"
	"log/slog"
	"strings"

	"neocart/config"
	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products    gateway.ProductGateway
	reviews     gateway.ReviewGateway
	sessions    usecase.SessionUsecase
	initialPage int
	scrollPage  int
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	cfg *config.Config,
	products gateway.ProductGateway,
	reviews gateway.ReviewGateway,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products:    products,
		reviews:     reviews,
		sessions:    sessions,
		initialPage: cfg.Catalog.InitialPageSize,
		scrollPage:  cfg.Catalog.ScrollPageSize,
		logger:      logger,
	}
}

// Browse returns the feed for the session's current view and search term.
func (srv *catalogService) Browse(ctx context.Context, session *state.Session, search string) (*entity.Feed, error) {
	search = strings.TrimSpace(search)
	view := srv.sessions.EffectiveView(session)

	if feed := session.Feed(); feed != nil && feed.Matches(view, search) {
		return feed, nil
	}

	// View or search changed: resolved prices must not leak across views, so
	// the accumulated pages are discarded and the first page refetched.
	srv.logger.Debug("Starting catalog feed", slog.String("view", view.String()), slog.String("search", search))

	feed := entity.NewFeed(view, search)
	page, err := srv.products.List(ctx, entity.ProductQuery{
		View:   view,
		Skip:   0,
		Limit:  srv.initialPage,
		Search: search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalog page")
	}

	feed.Append(page, srv.initialPage)
	session.SetFeed(feed)

	return feed, nil
}

// LoadMore fetches the next page into the feed.
func (srv *catalogService) LoadMore(ctx context.Context, session *state.Session, search string) (*entity.Feed, error) {
	feed, err := srv.Browse(ctx, session, search)
	if err != nil {
		return nil, err
	}
	if !feed.HasMore {
		return feed, nil
	}

	page, err := srv.products.List(ctx, entity.ProductQuery{
		View:   feed.View,
		Skip:   feed.NextSkip(),
		Limit:  srv.scrollPage,
		Search: feed.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalog page")
	}

	feed.Append(page, srv.scrollPage)
	session.SetFeed(feed)

	return feed, nil
}

// Detail fetches one product and its reviews for the session's view.
func (srv *catalogService) Detail(ctx context.Context, session *state.Session, productID string) (*usecase.ProductDetail, error) {
	view := srv.sessions.EffectiveView(session)

	product, err := srv.products.Get(ctx, productID, view)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "product %s", productID)
		}

		return nil, errors.Wrap(err, "failed to fetch product")
	}

	reviews, err := srv.reviews.List(ctx, productID)
	if err != nil {
		// The detail page is still useful without reviews.
		srv.logger.Warn("Failed to fetch reviews", slog.String("productID", productID), slog.Any("error", err))
		reviews = nil
	}

	return &usecase.ProductDetail{Product: product, Reviews: reviews}, nil
}
