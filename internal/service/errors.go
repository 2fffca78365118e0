package service

import (
	"errors"

	"github.com/google/uuid"
)

// Failure taxonomy shared by every service. Handlers map these to HTTP
// statuses; anything else is treated as an unexpected 500.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// requireOwner is the single owner-only-mutation check: the actor must
// equal the persisted owner, nothing is inferred from roles or schema.
func requireOwner(ownerID, actorID uuid.UUID) error {
	if ownerID != actorID {
		return ErrForbidden
	}
	return nil
}

// validRating rejects out-of-range values instead of clamping them.
func validRating(value int) bool {
	return value >= 1 && value <= 5
}
