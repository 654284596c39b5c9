package sale

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validSale() *SaleTransactionRequest {
	return &SaleTransactionRequest{
		SessionID: "S-0001",
		UserID:    "U1",
		SalesItems: []SalesItem{
			{Barcode: "6001234567890", Quantity: d("2"), UnitPrice: d("12.50")},
			{ProductSKU: "SKU-7", Quantity: d("1"), UnitPrice: d("0")},
		},
		PaymentDetails: []PaymentDetail{
			{PaymentMethodTypeID: "CASH", Amount: d("25.00")},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *SaleTransactionRequest)
		valid   bool
		message string
	}{
		{
			name:  "valid sale",
			valid: true,
		},
		{
			name:    "second item has zero quantity",
			mutate:  func(r *SaleTransactionRequest) { r.SalesItems[1].Quantity = decimal.Zero },
			message: "Validation errors: Sales item 2: Quantity must be greater than 0",
		},
		{
			name: "item without sku or barcode",
			mutate: func(r *SaleTransactionRequest) {
				r.SalesItems[0].Barcode = " "
			},
			message: "Validation errors: Sales item 1: Product SKU or barcode is required",
		},
		{
			name: "violations are aggregated in order",
			mutate: func(r *SaleTransactionRequest) {
				r.SessionID = ""
				r.SalesItems[0].UnitPrice = d("-1")
				r.PaymentDetails[0].PaymentMethodTypeID = ""
				r.PaymentDetails[0].Amount = decimal.Zero
			},
			message: "Validation errors: Session ID is required; " +
				"Sales item 1: Unit price cannot be negative; " +
				"Payment 1: Payment method type ID is required; " +
				"Payment 1: Amount must be greater than 0",
		},
		{
			name: "empty basket and tenders",
			mutate: func(r *SaleTransactionRequest) {
				r.SalesItems = nil
				r.PaymentDetails = nil
			},
			message: "Validation errors: At least one sales item is required; At least one payment method is required",
		},
		{
			name:    "barcode too long",
			mutate:  func(r *SaleTransactionRequest) { r.SalesItems[0].Barcode = strings.Repeat("9", 19) },
			message: "Validation errors: Sales item 1: Barcode cannot exceed 18 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSale()
			if tt.mutate != nil {
				tt.mutate(req)
			}
			got := Validate(req)
			assert.Equal(t, tt.valid, got.IsValid)
			assert.Equal(t, tt.message, got.ErrorMessage)
		})
	}

	assert.False(t, Validate(nil).IsValid)
}

func TestBuildDocument(t *testing.T) {
	req := validSale()
	req.PaymentDetails = append(req.PaymentDetails, PaymentDetail{
		PaymentMethodTypeID: "CARD", Amount: d("5"), ReferenceNumber: "REF1", CardTypeID: "VISA", BankID: "B1",
	})

	b, err := BuildDocument(req).Encode()

	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [
			{"product_sku":"","barcode":"6001234567890","quantity":"2","unit_price":"12.5","discount_reason_id":""},
			{"product_sku":"SKU-7","barcode":"","quantity":"1","unit_price":"0","discount_reason_id":""}
		],
		"payments": [
			{"payment_method_type_id":"CASH","amount":"25","reference_number":"","card_type_id":"","bank_id":""},
			{"payment_method_type_id":"CARD","amount":"5","reference_number":"REF1","card_type_id":"VISA","bank_id":"B1"}
		]
	}`, string(b))
}
