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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		collection: db.Collection(model.ProductModel{}.CollectionName()),
	}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&productM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return model.ToProductDomain(&productM), nil
}

// FindAll retrieves the full catalog.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query products")
	}
	defer cursor.Close(ctx)

	var models []model.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, model.ToProductDomain(&models[i]))
	}

	return products, nil
}

// Count reports the number of products in the catalog.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CreateMany inserts products in bulk. Only the startup seed uses this.
func (repo *productRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	docs := make([]any, 0, len(products))
	for _, product := range products {
		docs = append(docs, model.FromProductDomain(product))
	}

	if _, err := repo.collection.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "failed to insert products")
	}

	return nil
}
