// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "github.com/OtooCodes/ecommerce-api/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseUserID validates the identifier format before any store lookup.
// Format failures are client errors, distinct from not-found.
func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidUserID.WrapMessage("malformed user id")
	}

	return oid, nil
}

func parseProductID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidProductID.WrapMessage("malformed product id")
	}

	return oid, nil
}
