package sale

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
)

const procProcessSale = "sp_process_sale_transaction"

type gatewayRepo struct{ gw store.Gateway }

func NewRepository(gw store.Gateway) Repository { return &gatewayRepo{gw: gw} }

func (r *gatewayRepo) Process(ctx context.Context, sessionID, privilegeCard, userID string, document []byte) (*store.Response, error) {
	return r.gw.Execute(ctx, procProcessSale,
		store.Text("session_id", validation.CodeMaxLength, sessionID),
		store.NullableText("privilege_card_number", validation.CodeMaxLength, privilegeCard),
		store.Document("sale_document", document),
		store.Text("user_id", validation.IDMaxLength, userID),
	)
}
