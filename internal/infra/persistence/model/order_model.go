package model

import (
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderModel mirrors documents in the 'orders' collection. Line items embed
// the name and price snapshots taken at checkout.
type OrderModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Items       []OrderItemModel   `bson:"items"`
	TotalAmount float64            `bson:"total_amount"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// OrderItemModel is one embedded order line snapshot.
type OrderItemModel struct {
	ProductID   primitive.ObjectID `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	Price       float64            `bson:"price"`
	Subtotal    float64            `bson:"subtotal"`
}

// CollectionName returns the backing collection.
func (OrderModel) CollectionName() string {
	return "orders"
}

// ToOrderDomain maps a persistence document to a domain entity.
func ToOrderDomain(m *OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	return &entity.Order{
		ID:          m.ID,
		UserID:      m.UserID,
		Items:       items,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

// FromOrderDomain maps a domain entity to a persistence document.
func FromOrderDomain(o *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	return &OrderModel{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
