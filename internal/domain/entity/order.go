package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusCompleted is the only order status this service models; orders
// are created completed and never transition.
const OrderStatusCompleted = "completed"

// Order is an immutable record of a checkout. Line items snapshot the
// product name and unit price at checkout time, decoupled from later
// catalog changes.
type Order struct {
	ID          primitive.ObjectID // Store-generated unique identifier.
	UserID      primitive.ObjectID // Ordering user.
	Items       []OrderItem        // Price/name snapshots of the cart lines.
	TotalAmount float64            // Sum of line subtotals.
	Status      string             // Always OrderStatusCompleted.
	CreatedAt   time.Time          // Timestamp of checkout.
}

// OrderItem is a snapshot of one cart line at checkout time.
type OrderItem struct {
	ProductID   primitive.ObjectID
	ProductName string
	Quantity    int
	Price       float64 // Unit price at checkout time.
	Subtotal    float64 // Price * Quantity.
}

// TotalQuantity sums the snapshot quantities. Unlike Cart.TotalQuantity this
// only counts lines that made it into the order.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}
