package session

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/shopspring/decimal"
)

// Repository defines store access for cashier sessions.
type Repository interface {
	Start(ctx context.Context, terminalID, cashierID string, amount decimal.Decimal, userID string) (*store.Response, error)
	CountActiveTerminal(ctx context.Context, terminalID string) (int, error)
	CountOpenSessions(ctx context.Context, cashierID string) (int, error)
	ActiveTerminals(ctx context.Context) ([]Terminal, error)
}
