package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in. Identifier is
// matched against both username and email.
type LoginInput struct {
	Identifier string `json:"username_or_email" form:"username_or_email" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identifier.
type RegisterOutput struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginOutput returns the authenticated identity. No session token is
// issued; authentication schemes are out of scope.
type LoginOutput struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UserUsecase defines the interface for identity operations.
type UserUsecase interface {
	// Register creates a user and their empty cart. Fails with a conflict
	// when the username or email is already taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials. Unknown identifier and wrong password
	// fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
