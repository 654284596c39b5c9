package sale

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
)

// Repository defines store access for sales.
type Repository interface {
	Process(ctx context.Context, sessionID, privilegeCard, userID string, document []byte) (*store.Response, error)
}
