package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// Cart updates are read-modify-write against a single document with no
// optimistic version guard; concurrent adds to the same cart can lose an
// update. This mirrors the original service and is documented behavior,
// not a contract to fix.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// AddItem merges a product into the user's cart.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	productID, err := parseProductID(input.ProductID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	// The product must exist at add time; the cart may only accumulate
	// references that resolved at least once.
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add missing product to cart")
		}

		return nil, errors.Wrap(err, "failed to find product for cart add")
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		// Registration creates the cart, but a missing one is recreated
		// here rather than failing the request.
		return srv.createCartWithItem(ctx, userID, productID, quantity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart for add")
	}

	if line := cart.FindItem(productID); line != nil {
		// Merge-on-add: increment, never duplicate the line.
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err := srv.cartRepo.UpdateItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, errors.Wrap(err, "failed to update cart items")
	}

	srv.logger.Debug("Added product to cart",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int("quantity", quantity),
	)

	return &usecase.AddToCartOutput{Message: "Product added to cart successfully"}, nil
}

func (srv *cartService) createCartWithItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*usecase.AddToCartOutput, error) {
	srv.logger.Warn("Cart missing for user, creating one ad hoc", slog.Any("userID", userID))

	cart := &entity.Cart{
		UserID:    userID,
		Items:     []entity.CartItem{{ProductID: productID, Quantity: quantity}},
		UpdatedAt: time.Now().UTC(),
	}

	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart for add")
	}

	return &usecase.AddToCartOutput{Message: "Product added to cart successfully"}, nil
}

// GetCart materializes the user's cart against the current catalog.
func (srv *cartService) GetCart(ctx context.Context, userIDHex string) (*usecase.CartOutput, error) {
	userID, err := parseUserID(userIDHex)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	if cart == nil || len(cart.Items) == 0 {
		return &usecase.CartOutput{
			Message: "Cart is empty",
			Items:   []usecase.CartLineOutput{},
		}, nil
	}

	lines := make([]usecase.CartLineOutput, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Stale reference: the product was removed after it was
				// added to the cart. Omit the line rather than failing
				// the whole cart view.
				srv.logger.Debug("Omitting stale cart line", slog.Any("productID", item.ProductID))

				continue
			}

			return nil, errors.Wrap(err, "failed to join cart line with product")
		}

		lines = append(lines, usecase.CartLineOutput{
			Product:  toProductOutput(product),
			Quantity: item.Quantity,
			Subtotal: product.Price * float64(item.Quantity),
		})
	}

	// TotalItems counts stored lines, not joined ones; the two diverge
	// when a stale line was omitted above.
	return &usecase.CartOutput{
		UserID:     userIDHex,
		Items:      lines,
		TotalItems: cart.TotalQuantity(),
	}, nil
}
