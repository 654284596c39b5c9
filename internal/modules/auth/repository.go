package auth

import (
	"context"
	"errors"
)

// ErrOperatorNotFound is returned when no operator matches the user id.
var ErrOperatorNotFound = errors.New("operator not found")

// Repository defines store access for operator accounts.
type Repository interface {
	GetOperator(ctx context.Context, userID string) (*Operator, error)
}
