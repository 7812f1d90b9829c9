package mongodb

import (
	"context"
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	"github.com/OtooCodes/ecommerce-api/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{
		collection: db.Collection(model.CartModel{}.CollectionName()),
	}
}

// FindByUserID retrieves the cart owned by userID.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cartM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return model.ToCartDomain(&cartM), nil
}

// Create persists a new cart and fills in the store-generated ID.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := model.FromCartDomain(cart)

	result, err := repo.collection.InsertOne(ctx, cartM)
	if err != nil {
		return errors.Wrap(err, "failed to insert cart")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}

	return nil
}

// UpdateItems replaces the cart's items list and refreshes the updated
// timestamp. Last write wins; there is no version guard (documented
// behavior of the original service).
func (repo *cartRepository) UpdateItems(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) error {
	update := bson.M{"$set": bson.M{
		"items":      model.FromCartItemsDomain(items),
		"updated_at": time.Now().UTC(),
	}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": cartID}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update cart items")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// ClearByUserID empties the cart owned by userID.
func (repo *cartRepository) ClearByUserID(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"items":      []model.CartItemModel{},
		"updated_at": time.Now().UTC(),
	}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}
