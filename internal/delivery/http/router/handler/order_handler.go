package handler

import (
	"log/slog"
	"net/http"

	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/response"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order history handlers.
type OrderHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout handles the cart-to-order conversion request.
func (h *OrderHandler) Checkout(c echo.Context) error {
	output, err := h.uc.Checkout(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Checkout successful")
}

// ListOrders handles the order history request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	output, err := h.uc.ListOrders(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}
