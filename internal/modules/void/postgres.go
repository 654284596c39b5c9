package void

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
)

const (
	procVoidTransaction = "sp_void_transaction"
	procVoidReasons     = "sp_get_void_reasons"
	procSummary         = "sp_get_transaction_summary"
)

type gatewayRepo struct{ gw store.Gateway }

func NewRepository(gw store.Gateway) Repository { return &gatewayRepo{gw: gw} }

func (r *gatewayRepo) Void(ctx context.Context, req *VoidTransactionRequest) (*store.Response, error) {
	return r.gw.Execute(ctx, procVoidTransaction,
		store.Text("transaction_id", validation.CodeMaxLength, req.TransactionID),
		store.Text("void_reason_id", validation.IDMaxLength, req.VoidReasonID),
		store.Text("voided_by", validation.IDMaxLength, req.VoidedBy),
		store.Text("user_id", validation.IDMaxLength, req.UserID),
		store.NullableText("approval_code", validation.CodeMaxLength, req.ApprovalCode),
	)
}

func (r *gatewayRepo) Reasons(ctx context.Context) ([]VoidReason, error) {
	resp, err := r.gw.Execute(ctx, procVoidReasons)
	if err != nil {
		return nil, err
	}
	reasons := make([]VoidReason, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		reasons = append(reasons, VoidReason{
			ReasonID:          row.String("ReasonID"),
			ReasonDescription: row.String("ReasonDescription"),
			RequiresApproval:  row.Bool("RequiresApproval"),
			IsActive:          row.Bool("IsActive"),
		})
	}
	return reasons, nil
}

func (r *gatewayRepo) Summary(ctx context.Context, transactionID string) (*store.Response, error) {
	return r.gw.Execute(ctx, procSummary, store.Text("transaction_id", validation.CodeMaxLength, transactionID))
}
