package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
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

func TestUserHandler_Register_JSON(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/register", NewUserHandler(uc, newDiscardLogger()).Register)

	userID := primitive.NewObjectID().Hex()
	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "alice@example.com", input.Email)
		}).
		Return(&usecase.RegisterOutput{Message: "User registered successfully", UserID: userID}, nil)

	body := `{"username":"alice","email":"alice@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)
}

func TestUserHandler_Register_FormEncoded(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/register", NewUserHandler(uc, newDiscardLogger()).Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{Message: "User registered successfully", UserID: primitive.NewObjectID().Hex()}, nil)

	form := url.Values{}
	form.Set("username", "bob")
	form.Set("email", "bob@example.com")
	form.Set("password", "hunter22")
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/register", NewUserHandler(uc, newDiscardLogger()).Register)

	// Missing email fails validation before the usecase is reached.
	body := `{"username":"alice","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/register", NewUserHandler(uc, newDiscardLogger()).Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration pre-check failed"))

	body := `{"username":"alice","email":"alice@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", resp.Error.Code)
	assert.Equal(t, "Username or email already exists", resp.Message)
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/login", NewUserHandler(uc, newDiscardLogger()).Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Run(func(ctx context.Context, input *usecase.LoginInput) {
			assert.Equal(t, "alice", input.Identifier)
		}).
		Return(&usecase.LoginOutput{Message: "Login successful", UserID: primitive.NewObjectID().Hex(), Username: "alice"}, nil)

	body := `{"username_or_email":"alice","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decodeResponse(t, rec).Message)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	e := newTestEcho()
	e.POST("/login", NewUserHandler(uc, newDiscardLogger()).Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	body := `{"username_or_email":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	// The message never says whether the account exists.
	assert.Equal(t, "Invalid credentials", resp.Message)
}
