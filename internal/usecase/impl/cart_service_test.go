package impl

import (
	"context"
	"testing"

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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items:  []entity.CartItem{},
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().
		UpdateItems(ctx, cart.ID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) {
			require.Len(t, items, 1)
			assert.Equal(t, product.ID, items[0].ProductID)
			assert.Equal(t, 2, items[0].Quantity)
		}).
		Return(nil)

	output, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    userID.Hex(),
		ProductID: product.ID.Hex(),
		Quantity:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Product added to cart successfully", output.Message)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 3}},
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().
		UpdateItems(ctx, cart.ID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) {
			// One line per product, quantities summed, never duplicated.
			require.Len(t, items, 1)
			assert.Equal(t, product.ID, items[0].ProductID)
			assert.Equal(t, 5, items[0].Quantity)
		}).
		Return(nil)

	output, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    userID.Hex(),
		ProductID: product.ID.Hex(),
		Quantity:  2,
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestCartService_AddItem_DefaultsQuantityToOne(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	cart := &entity.Cart{ID: primitive.NewObjectID(), UserID: userID}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.cartRepo.EXPECT().
		UpdateItems(ctx, cart.ID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) {
			require.Len(t, items, 1)
			assert.Equal(t, 1, items[0].Quantity)
		}).
		Return(nil)

	_, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    userID.Hex(),
		ProductID: product.ID.Hex(),
	})

	require.NoError(t, err)
}

func TestCartService_AddItem_RejectsNegativeQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	output, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    primitive.NewObjectID().Hex(),
		ProductID: primitive.NewObjectID().Hex(),
		Quantity:  -1,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddItem_MalformedIDs(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    "nope",
		ProductID: primitive.NewObjectID().Hex(),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserID))

	_, err = fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    primitive.NewObjectID().Hex(),
		ProductID: "nope",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductID))
}

func TestCartService_AddItem_ProductMustExist(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	missingID := primitive.NewObjectID()
	fx.productRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    primitive.NewObjectID().Hex(),
		ProductID: missingID.Hex(),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_RecreatesMissingCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			assert.Equal(t, userID, cart.UserID)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, product.ID, cart.Items[0].ProductID)
			assert.Equal(t, 4, cart.Items[0].Quantity)
		}).
		Return(nil)

	output, err := fx.service.AddItem(ctx, &usecase.AddToCartInput{
		UserID:    userID.Hex(),
		ProductID: product.ID.Hex(),
		Quantity:  4,
	})

	require.NoError(t, err)
	assert.Equal(t, "Product added to cart successfully", output.Message)
}

// TestCartService_AddItem_ReadModifyWrite_RaceDocumented pins down the
// lost-update behavior: two adds that both read the same cart snapshot
// each write back only their own increment. This is how the service
// behaves with no version guard; the test documents it rather than
// asserting a stronger guarantee.
func TestCartService_AddItem_ReadModifyWrite_RaceDocumented(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	product := fakeProduct()
	cartID := primitive.NewObjectID()
	baseItems := []entity.CartItem{{ProductID: product.ID, Quantity: 1}}

	snapshot := func() *entity.Cart {
		items := make([]entity.CartItem, len(baseItems))
		copy(items, baseItems)

		return &entity.Cart{ID: cartID, UserID: userID, Items: items}
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Times(2)
	// Both adds observe the same pre-update snapshot, each as its own copy.
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(snapshot(), nil).Once()
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(snapshot(), nil).Once()

	var writes [][]entity.CartItem
	fx.cartRepo.EXPECT().
		UpdateItems(ctx, cartID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(ctx context.Context, cartID primitive.ObjectID, items []entity.CartItem) {
			writes = append(writes, items)
		}).
		Return(nil).
		Times(2)

	input := &usecase.AddToCartInput{UserID: userID.Hex(), ProductID: product.ID.Hex(), Quantity: 1}
	_, err := fx.service.AddItem(ctx, input)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, input)
	require.NoError(t, err)

	// Each write carries 1+1=2, not 3: the second add never saw the
	// first one's increment, so the last write wins.
	require.Len(t, writes, 2)
	assert.Equal(t, 2, writes[0][0].Quantity)
	assert.Equal(t, 2, writes[1][0].Quantity)
}

func TestCartService_GetCart_EmptyAndAbsentLookAlike(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound).Once()

	output, err := fx.service.GetCart(ctx, userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Cart is empty", output.Message)
	assert.Empty(t, output.Items)

	// An existing cart with no items yields the identical result.
	fx.cartRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []entity.CartItem{}}, nil).
		Once()

	output, err = fx.service.GetCart(ctx, userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Cart is empty", output.Message)
	assert.Empty(t, output.Items)
}

func TestCartService_GetCart_JoinsLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	first := fakeProduct()
	second := fakeProduct()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []entity.CartItem{
			{ProductID: first.ID, Quantity: 2},
			{ProductID: second.ID, Quantity: 1},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, first.ID).Return(first, nil)
	fx.productRepo.EXPECT().FindByID(ctx, second.ID).Return(second, nil)

	output, err := fx.service.GetCart(ctx, userID.Hex())

	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), output.UserID)
	require.Len(t, output.Items, 2)
	assert.Equal(t, first.Price*2, output.Items[0].Subtotal)
	assert.Equal(t, second.Price, output.Items[1].Subtotal)
	assert.Equal(t, 3, output.TotalItems)
}

func TestCartService_GetCart_OmitsStaleLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	live := fakeProduct()
	staleID := primitive.NewObjectID()
	cart := &entity.Cart{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Items: []entity.CartItem{
			{ProductID: live.ID, Quantity: 1},
			{ProductID: staleID, Quantity: 5},
		},
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, live.ID).Return(live, nil)
	fx.productRepo.EXPECT().FindByID(ctx, staleID).Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.GetCart(ctx, userID.Hex())

	require.NoError(t, err)
	// The stale line is dropped from the view but still counted in the
	// stored total, so the two intentionally diverge.
	require.Len(t, output.Items, 1)
	assert.Equal(t, live.ID.Hex(), output.Items[0].Product.ID)
	assert.Equal(t, 6, output.TotalItems)
}

func TestCartService_GetCart_MalformedUserID(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	output, err := fx.service.GetCart(ctx, "zzz")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserID))
}
