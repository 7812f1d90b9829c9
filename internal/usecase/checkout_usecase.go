package usecase

import (
	"context"
)

// --- Output DTOs ---

// OrderItemOutput is one snapshot line of an order.
type OrderItemOutput struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderSummaryOutput aggregates the snapshot lines of a new order.
// TotalItems counts snapshot quantities, not stored cart quantities.
type OrderSummaryOutput struct {
	Items       []OrderItemOutput `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	TotalItems  int               `json:"total_items"`
}

// CheckoutOutput confirms a successful checkout.
type CheckoutOutput struct {
	Message      string             `json:"message"`
	OrderID      string             `json:"order_id"`
	OrderSummary OrderSummaryOutput `json:"order_summary"`
}

// OrderOutput is the wire representation of a persisted order.
type OrderOutput struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Items       []OrderItemOutput `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

// OrderListOutput wraps a user's order history, newest first.
type OrderListOutput struct {
	UserID      string        `json:"user_id"`
	Orders      []OrderOutput `json:"orders"`
	TotalOrders int           `json:"total_orders"`
}

// CheckoutUsecase defines the cart-to-order conversion and order history.
type CheckoutUsecase interface {
	// Checkout converts the user's cart into an order: snapshots each line
	// that still resolves against the catalog, persists the order, then
	// clears the cart. A cart that is empty (or missing) fails with an
	// invalid-state error and leaves prior state untouched. The order is
	// written before the cart is cleared, so a failed order insert never
	// empties the cart.
	Checkout(ctx context.Context, userID string) (*CheckoutOutput, error)

	// ListOrders returns the user's order history, newest first.
	ListOrders(ctx context.Context, userID string) (*OrderListOutput, error)
}
