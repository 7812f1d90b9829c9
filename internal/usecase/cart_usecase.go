package usecase

import (
	"context"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to add a product to a cart.
// Quantity is optional and defaults to 1; non-positive values are rejected.
type AddToCartInput struct {
	UserID    string `json:"user_id" form:"user_id" validate:"required"`
	ProductID string `json:"product_id" form:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" form:"quantity" validate:"omitempty,gt=0"`
}

// --- Output DTOs ---

// AddToCartOutput confirms the write; cart contents are not returned.
type AddToCartOutput struct {
	Message string `json:"message"`
}

// CartLineOutput is one materialized cart line: the live product joined
// with the stored quantity.
type CartLineOutput struct {
	Product  ProductOutput `json:"product"`
	Quantity int           `json:"quantity"`
	Subtotal float64       `json:"subtotal"`
}

// CartOutput is the materialized cart. TotalItems counts the stored cart
// lines, which can exceed the joined lines when a referenced product has
// been removed from the catalog.
type CartOutput struct {
	Message    string           `json:"message,omitempty"`
	UserID     string           `json:"user_id,omitempty"`
	Items      []CartLineOutput `json:"items"`
	TotalItems int              `json:"total_items,omitempty"`
}

// CartUsecase defines the shopping cart operations.
type CartUsecase interface {
	// AddItem merges a product into the user's cart: an existing line has
	// its quantity incremented, otherwise a new line is appended. Creates
	// the cart if the user somehow has none.
	AddItem(ctx context.Context, input *AddToCartInput) (*AddToCartOutput, error)

	// GetCart materializes the cart, joining each stored line against the
	// current catalog. Lines whose product no longer exists are silently
	// omitted. An empty or absent cart yields an empty (non-error) result.
	GetCart(ctx context.Context, userID string) (*CartOutput, error)
}
