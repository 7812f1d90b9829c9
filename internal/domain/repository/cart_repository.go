package repository

import (
	"context"
	"errors"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCartNotFound is a domain-specific error returned when a user has no cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the operations for cart persistence. A cart is a
// single document; item updates replace the whole items list (the original
// service behaves the same way, so concurrent updates can lose writes).
type CartRepository interface {
	// FindByUserID retrieves the cart owned by userID.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error)

	// Create persists a new cart and fills in the generated ID.
	Create(ctx context.Context, cart *entity.Cart) error

	// UpdateItems replaces the cart's items list and refreshes its
	// updated timestamp.
	UpdateItems(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) error

	// ClearByUserID empties the cart owned by userID and refreshes its
	// updated timestamp.
	ClearByUserID(ctx context.Context, userID primitive.ObjectID) error
}
