package item

import (
	"context"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/validation"
)

const procItemWithPromotions = "sp_get_item_with_promotions"

type gatewayRepo struct{ gw store.Gateway }

func NewRepository(gw store.Gateway) Repository { return &gatewayRepo{gw: gw} }

func (r *gatewayRepo) WithPromotions(ctx context.Context, barcode string) (*store.Response, error) {
	return r.gw.Execute(ctx, procItemWithPromotions, store.Text("barcode", validation.BarcodeMaxLength, barcode))
}
