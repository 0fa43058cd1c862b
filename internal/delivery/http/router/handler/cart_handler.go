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

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Summary returns the current cart.
func (h *CartHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "")
}

type addToCartInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// Add puts a product into the cart.
func (h *CartHandler) Add(c echo.Context) error {
	var input *addToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product and quantity are required")
	}

	summary, err := h.uc.Add(c.Request().Context(), middleware.GetSession(c), input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "Added to cart")
}

type adjustQuantityInput struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustQuantity applies a relative quantity change to a line.
func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	var input *adjustQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	summary, err := h.uc.AdjustQuantity(c.Request().Context(), middleware.GetSession(c), c.Param("id"), input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "")
}

// Remove deletes a line from the cart.
func (h *CartHandler) Remove(c echo.Context) error {
	summary, err := h.uc.Remove(c.Request().Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "Removed from cart")
}

type applyCouponInput struct {
	Code string `json:"code"`
}

// ApplyCoupon stages a discount code on the cart.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	var input *applyCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	summary, err := h.uc.ApplyCoupon(c.Request().Context(), middleware.GetSession(c), input.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartSummaryJSON(summary), "Coupon applied")
}
