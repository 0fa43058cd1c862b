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

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, logger: logger}
}

// Lines returns the saved products.
func (h *WishlistHandler) Lines(c echo.Context) error {
	lines, err := h.uc.Lines(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistJSON(lines), "")
}

type addToWishlistInput struct {
	ProductID string `json:"productId" validate:"required"`
}

// Add saves a product for later.
func (h *WishlistHandler) Add(c echo.Context) error {
	var input *addToWishlistInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product is required")
	}

	lines, err := h.uc.Add(c.Request().Context(), middleware.GetSession(c), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistJSON(lines), "Added to wishlist")
}

// Remove drops a saved product.
func (h *WishlistHandler) Remove(c echo.Context) error {
	lines, err := h.uc.Remove(c.Request().Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistJSON(lines), "Removed from wishlist")
}

// MoveToCart moves a saved product into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	summary, err := h.uc.MoveToCart(c.Request().Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "Moved to cart")
}
