// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks. The Output DTOs carry
// json tags and form the wire serialization boundary.
package usecase

import (
	"context"
)

// --- Output DTOs ---

// ProductOutput is the wire representation of a catalog product.
type ProductOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// ProductListOutput wraps the full catalog listing.
type ProductListOutput struct {
	Products []ProductOutput `json:"products"`
}

// CatalogUsecase defines read-only catalog browsing operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts returns every product in the catalog.
	ListProducts(ctx context.Context) (*ProductListOutput, error)

	// GetProduct returns one product by its identifier. A malformed
	// identifier and a well-formed but unmatched one fail with distinct
	// error kinds.
	GetProduct(ctx context.Context, productID string) (*ProductOutput, error)
}
