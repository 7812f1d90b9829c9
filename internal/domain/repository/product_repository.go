// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer; the document store is reached only through
// them (no global store handle).
package repository

import (
	"context"
	"errors"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the read-only operations for the product catalog.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)

	// FindAll retrieves the full catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Count reports the number of products in the catalog.
	Count(ctx context.Context) (int64, error)

	// CreateMany inserts products in bulk. Only used by the startup seed.
	CreateMany(ctx context.Context, products []*entity.Product) error
}
