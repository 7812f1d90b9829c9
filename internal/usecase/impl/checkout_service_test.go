package impl

import (
	"context"
	"testing"
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	mockRepo "github.com/OtooCodes/ecommerce-api/internal/mocks/repository"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewCheckoutService(CheckoutServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Logger:      newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	product.Price = 10.00
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 2}},
	}

	generatedOrderID := primitive.NewObjectID()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, userID, order.UserID)
			assert.Equal(t, entity.OrderStatusCompleted, order.Status)
			require.Len(t, order.Items, 1)
			assert.Equal(t, product.Name, order.Items[0].ProductName)
			assert.Equal(t, 10.00, order.Items[0].Price)
			assert.Equal(t, 20.00, order.Items[0].Subtotal)
			assert.Equal(t, 20.00, order.TotalAmount)
			order.ID = generatedOrderID
		}).
		Return(nil)
	fx.cartRepo.EXPECT().ClearByUserID(ctx, userID).Return(nil)

	output, err := fx.service.Checkout(ctx, userID.Hex())

	require.NoError(t, err)
	assert.Equal(t, "Checkout successful", output.Message)
	assert.Equal(t, generatedOrderID.Hex(), output.OrderID)
	assert.Equal(t, 20.00, output.OrderSummary.TotalAmount)
	assert.Equal(t, 2, output.OrderSummary.TotalItems)
}

func TestCheckoutService_Checkout_MultipleLines(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	first := fakeProduct()
	first.Price = 999.99
	second := fakeProduct()
	second.Price = 29.99
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []entity.CartItem{
			{ProductID: first.ID, Quantity: 1},
			{ProductID: second.ID, Quantity: 3},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, first.ID).Return(first, nil)
	fx.productRepo.EXPECT().FindByID(ctx, second.ID).Return(second, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			require.Len(t, order.Items, 2)
			assert.InDelta(t, 999.99+3*29.99, order.TotalAmount, 1e-9)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().ClearByUserID(ctx, userID).Return(nil)

	output, err := fx.service.Checkout(ctx, userID.Hex())

	require.NoError(t, err)
	require.Len(t, output.OrderSummary.Items, 2)
	assert.Equal(t, 4, output.OrderSummary.TotalItems)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []entity.CartItem{}}, nil)

	// No order create, no cart clear; checkout of an empty cart has no
	// effect on stored state.
	output, err := fx.service.Checkout(ctx, userID.Hex())

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_Checkout_AbsentCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	output, err := fx.service.Checkout(ctx, userID.Hex())

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_Checkout_SkipsStaleLines(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	live := fakeProduct()
	live.Price = 12.99
	staleID := primitive.NewObjectID()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []entity.CartItem{
			{ProductID: staleID, Quantity: 7},
			{ProductID: live.ID, Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, staleID).Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().FindByID(ctx, live.ID).Return(live, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			// The stale line is in neither the order nor the total.
			require.Len(t, order.Items, 1)
			assert.Equal(t, live.ID, order.Items[0].ProductID)
			assert.Equal(t, 12.99, order.TotalAmount)
		}).
		Return(nil)
	fx.cartRepo.EXPECT().ClearByUserID(ctx, userID).Return(nil)

	output, err := fx.service.Checkout(ctx, userID.Hex())

	require.NoError(t, err)
	assert.Equal(t, 1, output.OrderSummary.TotalItems)
}

func TestCheckoutService_Checkout_OrderCreateFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 1}},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("write concern failure"))

	// ClearByUserID must not be called when the order insert fails; the
	// mock would flag the unexpected call.
	output, err := fx.service.Checkout(ctx, userID.Hex())

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestCheckoutService_Checkout_MalformedUserID(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	output, err := fx.service.Checkout(ctx, "not-hex")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserID))
}

func TestCheckoutService_ListOrders_NewestFirst(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	now := time.Now().UTC()
	orders := []*entity.Order{
		{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			Items:       []entity.OrderItem{{ProductID: primitive.NewObjectID(), ProductName: "Laptop", Quantity: 1, Price: 999.99, Subtotal: 999.99}},
			TotalAmount: 999.99,
			Status:      entity.OrderStatusCompleted,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			Items:       []entity.OrderItem{{ProductID: primitive.NewObjectID(), ProductName: "Coffee Mug", Quantity: 2, Price: 12.99, Subtotal: 25.98}},
			TotalAmount: 25.98,
			Status:      entity.OrderStatusCompleted,
			CreatedAt:   now.Add(-time.Hour),
		},
	}

	fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return(orders, nil)

	output, err := fx.service.ListOrders(ctx, userID.Hex())

	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), output.UserID)
	assert.Equal(t, 2, output.TotalOrders)
	require.Len(t, output.Orders, 2)
	// Repository order is preserved; the store already sorts newest first.
	assert.Equal(t, orders[0].ID.Hex(), output.Orders[0].ID)
	assert.Equal(t, now.Format(time.RFC3339), output.Orders[0].CreatedAt)
}

func TestCheckoutService_ListOrders_Empty(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.Order{}, nil)

	output, err := fx.service.ListOrders(ctx, userID.Hex())

	require.NoError(t, err)
	assert.Equal(t, 0, output.TotalOrders)
	assert.Empty(t, output.Orders)
}
