// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. The catalog is seeded once at startup and is
// read-only from this service's perspective.
type Product struct {
	ID          primitive.ObjectID // Store-generated unique identifier.
	Name        string             // Display name of the product.
	Description string             // Short marketing description.
	Price       float64            // Unit price, non-negative.
	Image       string             // URL of the product image.
	Category    string             // Free-form category label.
}
