package repository

import (
	"context"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository defines the operations for order persistence. Orders are
// append-only; nothing updates or deletes them.
type OrderRepository interface {
	// Create persists a new order and fills in the generated ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUserID retrieves all orders for a user, newest first.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error)
}
