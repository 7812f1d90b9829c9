// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/response"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// GetProduct handles the single product lookup request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	output, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product retrieved successfully")
}

// Root is the welcome endpoint.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome to our E-commerce API",
	}, "Welcome")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
