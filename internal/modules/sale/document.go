package sale

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Document is the structured parameter sent to the sale procedure. Optional
// fields are always present, as "" when unset.
type Document struct {
	Items    []ItemRecord    `json:"items"`
	Payments []PaymentRecord `json:"payments"`
}

type ItemRecord struct {
	ProductSKU       string          `json:"product_sku"`
	Barcode          string          `json:"barcode"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountReasonID string          `json:"discount_reason_id"`
}

type PaymentRecord struct {
	PaymentMethodTypeID string          `json:"payment_method_type_id"`
	Amount              decimal.Decimal `json:"amount"`
	ReferenceNumber     string          `json:"reference_number"`
	CardTypeID          string          `json:"card_type_id"`
	BankID              string          `json:"bank_id"`
}

// BuildDocument normalizes the basket, keeping item and payment order.
func BuildDocument(req *SaleTransactionRequest) Document {
	doc := Document{
		Items:    make([]ItemRecord, 0, len(req.SalesItems)),
		Payments: make([]PaymentRecord, 0, len(req.PaymentDetails)),
	}
	for _, it := range req.SalesItems {
		doc.Items = append(doc.Items, ItemRecord{
			ProductSKU:       it.ProductSKU,
			Barcode:          it.Barcode,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			DiscountReasonID: it.DiscountReasonID,
		})
	}
	for _, p := range req.PaymentDetails {
		doc.Payments = append(doc.Payments, PaymentRecord{
			PaymentMethodTypeID: p.PaymentMethodTypeID,
			Amount:              p.Amount,
			ReferenceNumber:     p.ReferenceNumber,
			CardTypeID:          p.CardTypeID,
			BankID:              p.BankID,
		})
	}
	return doc
}

// Encode renders the document as JSON.
func (d Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}
