package repository

import (
	"context"
	"errors"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByUsernameOrEmail retrieves a single user whose username or email
	// equals identifier. Login accepts either, so this is the only lookup
	// the identity flow needs.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether any user already claims the
	// given username or the given email. Used as the registration
	// pre-check; there is no storage-level uniqueness constraint, so two
	// concurrent registrations can race (documented behavior).
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user entity and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error
}
