package impl

import (
	"context"
	"log/slog"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListProducts returns the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context) (*usecase.ProductListOutput, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, toProductOutput(product))
	}

	return &usecase.ProductListOutput{Products: outputs}, nil
}

// GetProduct returns one product by identifier.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*usecase.ProductOutput, error) {
	oid, err := parseProductID(productID)
	if err != nil {
		srv.logger.Debug("Rejected malformed product id", slog.String("productID", productID))

		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	output := toProductOutput(product)

	return &output, nil
}

func toProductOutput(product *entity.Product) usecase.ProductOutput {
	return usecase.ProductOutput{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Category:    product.Category,
	}
}
