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
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByUsernameOrEmail retrieves a single user whose username or email
// equals identifier.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}

	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username or email")
	}

	return model.ToUserDomain(&userM), nil
}

// ExistsByUsernameOrEmail reports whether the username or the email is
// already claimed by any user.
func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "failed to check for existing user")
	}

	return count > 0, nil
}

// Create persists a new user and fills in the store-generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		return errors.Wrap(err, "failed to insert user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}
