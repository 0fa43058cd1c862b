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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Checkout places the order for the current cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "All shipping fields are required")
	}

	confirmation, err := h.uc.Checkout(c.Request().Context(), middleware.GetSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toConfirmationJSON(confirmation), "Order placed")
}

// History lists the account's past orders.
func (h *OrderHandler) History(c echo.Context) error {
	orders, err := h.uc.History(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]orderJSON, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderJSON(&orders[i]))
	}

	return response.Success(c, http.StatusOK, out, "")
}
