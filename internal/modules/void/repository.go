package void

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
)

// Repository defines store access for the void workflow.
type Repository interface {
	Void(ctx context.Context, req *VoidTransactionRequest) (*store.Response, error)
	Reasons(ctx context.Context) ([]VoidReason, error)
	Summary(ctx context.Context, transactionID string) (*store.Response, error)
}
