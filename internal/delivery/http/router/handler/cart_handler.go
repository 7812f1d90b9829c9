package handler

import (
	"log/slog"
	"net/http"

	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/response"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddToCart handles the add-to-cart request. Quantity defaults to 1 when
// absent; non-positive values fail validation.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product added to cart successfully")
}

// GetCart handles the cart materialization request.
func (h *CartHandler) GetCart(c echo.Context) error {
	output, err := h.uc.GetCart(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Cart retrieved successfully")
}
