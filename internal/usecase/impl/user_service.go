package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"
	"github.com/OtooCodes/ecommerce-api/internal/domain/repository"
	"github.com/OtooCodes/ecommerce-api/internal/domain/service"
	"github.com/OtooCodes/ecommerce-api/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	CartRepo repository.CartRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		cartRepo: params.CartRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// Register orchestrates the complete user registration process: uniqueness
// pre-check, password hashing, user creation, and empty cart creation.
// The pre-check is not a storage-level constraint; two registrations racing
// past it can both succeed. That matches the original service and is
// accepted, documented behavior.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	taken, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}
	if taken {
		srv.logger.Warn("Registration conflict", slog.String("username", input.Username), slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration pre-check failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Every user owns exactly one cart, created empty alongside the account.
	newCart := &entity.Cart{
		UserID:    newUser.ID,
		Items:     []entity.CartItem{},
		UpdatedAt: time.Now().UTC(),
	}

	if err := srv.cartRepo.Create(ctx, newCart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart during registration")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		Message: "User registered successfully",
		UserID:  newUser.ID.Hex(),
	}, nil
}

// Login verifies credentials against the stored hash. Unknown identifier
// and wrong password both fail with the same error so responses never leak
// whether an account exists.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("identifier", input.Identifier))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("identifier", input.Identifier))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// bcrypt comparison is CPU-bound; no store access past this point.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("identifier", input.Identifier))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Message:  "Login successful",
		UserID:   user.ID.Hex(),
		Username: user.Username,
	}, nil
}
