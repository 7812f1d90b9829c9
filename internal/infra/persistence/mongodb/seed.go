package mongodb

import (
	"context"
	"log/slog"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	"github.com/OtooCodes/ecommerce-api/internal/domain/lifecycle"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sampleProducts is the fixed bootstrap catalog. Seeding runs once at
// startup and only when the collection is empty, so restarting the service
// never duplicates it.
func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			Name:        "Laptop",
			Description: "High-performance gaming laptop",
			Price:       999.99,
			Image:       "https://example.com/laptop.jpg",
			Category:    "Electronics",
		},
		{
			Name:        "Smartphone",
			Description: "Latest smartphone with great camera",
			Price:       699.99,
			Image:       "https://example.com/phone.jpg",
			Category:    "Electronics",
		},
		{
			Name:        "Headphones",
			Description: "Wireless noise-cancelling headphones",
			Price:       199.99,
			Image:       "https://example.com/headphones.jpg",
			Category:    "Electronics",
		},
		{
			Name:        "T-Shirt",
			Description: "Cotton t-shirt with cool design",
			Price:       29.99,
			Image:       "https://example.com/tshirt.jpg",
			Category:    "Clothing",
		},
		{
			Name:        "Coffee Mug",
			Description: "Ceramic coffee mug with handle",
			Price:       12.99,
			Image:       "https://example.com/mug.jpg",
			Category:    "Home",
		},
	}
}

// SeedParams defines the dependencies for the catalog seed hook.
type SeedParams struct {
	fx.In
	fx.Lifecycle

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// RegisterCatalogSeed installs a startup hook that seeds the product
// catalog when it is empty.
func RegisterCatalogSeed(params SeedParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return SeedCatalog(ctx, params.ProductRepo, params.Logger)
		},
	})
}

// SeedCatalog inserts the sample products if the catalog is empty.
func SeedCatalog(ctx context.Context, productRepo repository.ProductRepository, logger *slog.Logger) error {
	count, err := productRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count products for seed")
	}
	if count > 0 {
		return nil
	}

	products := sampleProducts()
	if err := productRepo.CreateMany(ctx, products); err != nil {
		return errors.Wrap(err, "failed to seed product catalog")
	}

	logger.Info("Seeded product catalog", slog.Int("count", len(products)))

	return nil
}
