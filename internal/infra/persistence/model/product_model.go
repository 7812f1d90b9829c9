// Package model contains the bson-tagged persistence documents and their
// mapping to and from domain entities. Entities never carry storage tags;
// this package is the serialization boundary on the store side.
package model

import (
	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel mirrors documents in the 'products' collection.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
}

// CollectionName returns the backing collection.
func (ProductModel) CollectionName() string {
	return "products"
}

// ToProductDomain maps a persistence document to a domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Category:    m.Category,
	}
}

// FromProductDomain maps a domain entity to a persistence document.
func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
	}
}
