package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Username and email are both unique
// login identifiers; the password is stored only as an irreversible hash.
// A user is created once at registration and never mutated afterwards by
// this service.
type User struct {
	ID           primitive.ObjectID // Store-generated unique identifier.
	Username     string             // Unique display/login name.
	Email        string             // Unique contact email, also usable for login.
	PasswordHash string             // bcrypt hash, never the plaintext password.
	CreatedAt    time.Time          // Timestamp of registration.
}
