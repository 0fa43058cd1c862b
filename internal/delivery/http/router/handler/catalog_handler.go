package handler

import (
	"log/slog"
	"net/http"

	"neocart/internal/delivery/http/middleware"
	"neocart/internal/delivery/http/response"
	"neocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	reviews usecase.ReviewUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, reviews usecase.ReviewUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews, logger: logger}
}

// Browse returns the product feed for the session's pricing view.
func (h *CatalogHandler) Browse(c echo.Context) error {
	feed, err := h.catalog.Browse(c.Request().Context(), middleware.GetSession(c), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFeedJSON(feed), "")
}

// LoadMore appends the next page to the feed.
func (h *CatalogHandler) LoadMore(c echo.Context) error {
	feed, err := h.catalog.LoadMore(c.Request().Context(), middleware.GetSession(c), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFeedJSON(feed), "")
}

// Detail returns one product with its reviews.
func (h *CatalogHandler) Detail(c echo.Context) error {
	detail, err := h.catalog.Detail(c.Request().Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": toProductJSON(*detail.Product),
		"reviews": toReviewsJSON(detail.Reviews),
	}, "")
}

// ListReviews returns the reviews for a product.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewsJSON(reviews), "")
}

// CreateReview posts a review for the session's account.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Rating must be between 1 and 5")
	}

	review, err := h.reviews.Create(c.Request().Context(), middleware.GetSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewJSON(*review), "Review posted")
}
