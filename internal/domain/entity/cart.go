package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a user's shopping cart. Exactly one cart exists per user; it is
// created empty at registration and persists indefinitely. Items hold at
// most one entry per distinct product (merge-on-add).
type Cart struct {
	ID        primitive.ObjectID // Store-generated unique identifier.
	UserID    primitive.ObjectID // Owning user, one-to-one.
	Items     []CartItem         // Ordered list, one entry per product.
	UpdatedAt time.Time          // Refreshed on every write, including the checkout clear.
}

// CartItem is a single cart line referencing a live product.
type CartItem struct {
	ProductID primitive.ObjectID
	Quantity  int // Positive.
}

// FindItem returns a pointer to the line for productID, or nil when the
// product is not in the cart.
func (c *Cart) FindItem(productID primitive.ObjectID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

// TotalQuantity sums the stored quantities. This intentionally counts every
// stored line, even ones whose product no longer resolves.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}
