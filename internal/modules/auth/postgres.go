package auth

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
)

const procGetOperator = "sp_get_operator"

type gatewayRepo struct{ gw store.Gateway }

// NewRepository creates an operator repository backed by the store gateway.
func NewRepository(gw store.Gateway) Repository { return &gatewayRepo{gw: gw} }

func (r *gatewayRepo) GetOperator(ctx context.Context, userID string) (*Operator, error) {
	resp, err := r.gw.Execute(ctx, procGetOperator, store.Text("user_id", validation.IDMaxLength, userID))
	if err != nil {
		return nil, err
	}
	row, ok := resp.First()
	if !ok {
		return nil, ErrOperatorNotFound
	}
	return &Operator{
		UserID:       row.String("UserID"),
		EmployeeID:   row.String("EmployeeID"),
		Name:         row.String("Name"),
		PasswordHash: row.String("PasswordHash"),
		IsActive:     row.Bool("IsActive"),
	}, nil
}
