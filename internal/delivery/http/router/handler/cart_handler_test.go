package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"
	mockUsecase "github.com/OtooCodes/ecommerce-api/internal/mocks/usecase"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartHandler_AddToCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.POST("/cart", NewCartHandler(uc, newDiscardLogger()).AddToCart)

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	uc.EXPECT().
		AddItem(mock.Anything, mock.AnythingOfType("*usecase.AddToCartInput")).
		Run(func(ctx context.Context, input *usecase.AddToCartInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, productID, input.ProductID)
			assert.Equal(t, 3, input.Quantity)
		}).
		Return(&usecase.AddToCartOutput{Message: "Product added to cart successfully"}, nil)

	body := `{"user_id":"` + userID + `","product_id":"` + productID + `","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product added to cart successfully", decodeResponse(t, rec).Message)
}

func TestCartHandler_AddToCart_QuantityOmitted(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.POST("/cart", NewCartHandler(uc, newDiscardLogger()).AddToCart)

	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	// Quantity is optional at the validation layer; the usecase defaults
	// it to 1.
	uc.EXPECT().
		AddItem(mock.Anything, mock.AnythingOfType("*usecase.AddToCartInput")).
		Run(func(ctx context.Context, input *usecase.AddToCartInput) {
			assert.Zero(t, input.Quantity)
		}).
		Return(&usecase.AddToCartOutput{Message: "Product added to cart successfully"}, nil)

	body := `{"user_id":"` + userID + `","product_id":"` + productID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddToCart_NegativeQuantityRejected(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.POST("/cart", NewCartHandler(uc, newDiscardLogger()).AddToCart)

	body := `{"user_id":"` + primitive.NewObjectID().Hex() + `","product_id":"` + primitive.NewObjectID().Hex() + `","quantity":-2}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Fails validation before the usecase is reached.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_AddToCart_MissingProduct(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.POST("/cart", NewCartHandler(uc, newDiscardLogger()).AddToCart)

	uc.EXPECT().
		AddItem(mock.Anything, mock.AnythingOfType("*usecase.AddToCartInput")).
		Return(nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add missing product to cart"))

	body := `{"user_id":"` + primitive.NewObjectID().Hex() + `","product_id":"` + primitive.NewObjectID().Hex() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_GetCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.GET("/cart/:user_id", NewCartHandler(uc, newDiscardLogger()).GetCart)

	userID := primitive.NewObjectID().Hex()
	uc.EXPECT().GetCart(mock.Anything, userID).Return(&usecase.CartOutput{
		UserID: userID,
		Items: []usecase.CartLineOutput{
			{Product: usecase.ProductOutput{Name: "Headphones", Price: 199.99}, Quantity: 2, Subtotal: 399.98},
		},
		TotalItems: 2,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/"+userID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestCartHandler_GetCart_Empty(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.GET("/cart/:user_id", NewCartHandler(uc, newDiscardLogger()).GetCart)

	userID := primitive.NewObjectID().Hex()
	uc.EXPECT().GetCart(mock.Anything, userID).Return(&usecase.CartOutput{
		Message: "Cart is empty",
		Items:   []usecase.CartLineOutput{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/"+userID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// An empty cart is a successful read, not an error.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
}

func TestCartHandler_GetCart_MalformedUserID(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	e := newTestEcho()
	e.GET("/cart/:user_id", NewCartHandler(uc, newDiscardLogger()).GetCart)

	uc.EXPECT().
		GetCart(mock.Anything, "oops").
		Return(nil, domainerrors.ErrInvalidUserID.WrapMessage("malformed user id"))

	req := httptest.NewRequest(http.MethodGet, "/cart/oops", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INVALID_USER_ID", decodeResponse(t, rec).Error.Code)
}
