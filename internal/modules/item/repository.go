package item

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
)

// Repository defines store access for item lookups.
type Repository interface {
	WithPromotions(ctx context.Context, barcode string) (*store.Response, error)
}
