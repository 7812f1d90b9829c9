package mongodb

import (
	"context"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	"github.com/OtooCodes/ecommerce-api/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		collection: db.Collection(model.OrderModel{}.CollectionName()),
	}
}

// Create persists a new order and fills in the store-generated ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := model.FromOrderDomain(order)

	result, err := repo.collection.InsertOne(ctx, orderM)
	if err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return nil
}

// FindByUserID retrieves all orders for a user, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := repo.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}
	defer cursor.Close(ctx)

	var models []model.OrderModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, model.ToOrderDomain(&models[i]))
	}

	return orders, nil
}
