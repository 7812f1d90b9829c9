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
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

// Checkout converts the user's cart into an order.
func (srv *checkoutService) Checkout(ctx context.Context, userIDHex string) (*usecase.CheckoutOutput, error) {
	userID, err := parseUserID(userIDHex)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart for checkout")
	}

	if cart == nil || len(cart.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("checkout requires a non-empty cart")
	}

	// Snapshot each stored line that still resolves against the catalog.
	// Stale references are skipped: not in the order, not in the total.
	orderItems := make([]entity.OrderItem, 0, len(cart.Items))
	var grandTotal float64

	for _, item := range cart.Items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.logger.Debug("Skipping stale cart line at checkout", slog.Any("productID", item.ProductID))

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve product for checkout")
		}

		subtotal := product.Price * float64(item.Quantity)
		orderItems = append(orderItems, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
			Subtotal:    subtotal,
		})
		grandTotal += subtotal
	}

	order := &entity.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: grandTotal,
		Status:      entity.OrderStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	// Order insert strictly precedes the cart clear: if the insert fails
	// the cart keeps its items and the checkout has no effect.
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.logger.Error("Failed to persist order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := srv.cartRepo.ClearByUserID(ctx, userID); err != nil {
		// The order exists; the caller still gets it. The stale cart is
		// surfaced in the log for operators.
		srv.logger.Error("Order persisted but cart clear failed",
			slog.Any("userID", userID),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	srv.logger.Info("Checkout completed",
		slog.Any("userID", userID),
		slog.Any("orderID", order.ID),
		slog.Float64("totalAmount", grandTotal),
	)

	return &usecase.CheckoutOutput{
		Message:      "Checkout successful",
		OrderID:      order.ID.Hex(),
		OrderSummary: toOrderSummaryOutput(order),
	}, nil
}

// ListOrders returns the user's order history, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context, userIDHex string) (*usecase.OrderListOutput, error) {
	userID, err := parseUserID(userIDHex)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	outputs := make([]usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toOrderOutput(order))
	}

	return &usecase.OrderListOutput{
		UserID:      userIDHex,
		Orders:      outputs,
		TotalOrders: len(outputs),
	}, nil
}

func toOrderItemOutputs(items []entity.OrderItem) []usecase.OrderItemOutput {
	outputs := make([]usecase.OrderItemOutput, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, usecase.OrderItemOutput{
			ProductID:   item.ProductID.Hex(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	return outputs
}

func toOrderSummaryOutput(order *entity.Order) usecase.OrderSummaryOutput {
	return usecase.OrderSummaryOutput{
		Items:       toOrderItemOutputs(order.Items),
		TotalAmount: order.TotalAmount,
		TotalItems:  order.TotalQuantity(),
	}
}

func toOrderOutput(order *entity.Order) usecase.OrderOutput {
	return usecase.OrderOutput{
		ID:          order.ID.Hex(),
		UserID:      order.UserID.Hex(),
		Items:       toOrderItemOutputs(order.Items),
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
}
