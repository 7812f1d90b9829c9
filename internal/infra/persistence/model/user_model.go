package model

import (
	"time"

	"github.com/OtooCodes/ecommerce-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors documents in the 'users' collection. The password field
// holds the bcrypt hash, matching the original document shape.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CollectionName returns the backing collection.
func (UserModel) CollectionName() string {
	return "users"
}

// ToUserDomain maps a persistence document to a domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
	}
}

// FromUserDomain maps a domain entity to a persistence document.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
	}
}
