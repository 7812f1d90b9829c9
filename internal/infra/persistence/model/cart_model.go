package model

import (
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartModel mirrors documents in the 'carts' collection. Items are embedded
// in the cart document; updates replace the whole list.
type CartModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Items     []CartItemModel    `bson:"items"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CartItemModel is one embedded cart line.
type CartItemModel struct {
	ProductID primitive.ObjectID `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

// CollectionName returns the backing collection.
func (CartModel) CollectionName() string {
	return "carts"
}

// ToCartDomain maps a persistence document to a domain entity.
func ToCartDomain(m *CartModel) *entity.Cart {
	items := make([]entity.CartItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		Items:     items,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromCartDomain maps a domain entity to a persistence document.
func FromCartDomain(c *entity.Cart) *CartModel {
	return &CartModel{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     FromCartItemsDomain(c.Items),
		UpdatedAt: c.UpdatedAt,
	}
}

// FromCartItemsDomain maps cart lines to their embedded document form.
func FromCartItemsDomain(items []entity.CartItem) []CartItemModel {
	models := make([]CartItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, CartItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return models
}
