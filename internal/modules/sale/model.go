package sale

import (
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/shopspring/decimal"
)

// SaleTransactionRequest is a completed basket ready to be posted.
type SaleTransactionRequest struct {
	SessionID           string          `json:"session_id"`
	PrivilegeCardNumber string          `json:"privilege_card_number,omitempty"`
	SalesItems          []SalesItem     `json:"sales_items"`
	PaymentDetails      []PaymentDetail `json:"payment_details"`
	UserID              string          `json:"user_id"`
}

// SalesItem is one basket line. Either ProductSKU or Barcode identifies the
// product.
type SalesItem struct {
	ProductSKU       string          `json:"product_sku,omitempty"`
	Barcode          string          `json:"barcode,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountReasonID string          `json:"discount_reason_id,omitempty"`
}

// PaymentDetail is one tender applied to the sale.
type PaymentDetail struct {
	PaymentMethodTypeID string          `json:"payment_method_type_id"`
	Amount              decimal.Decimal `json:"amount"`
	ReferenceNumber     string          `json:"reference_number,omitempty"`
	CardTypeID          string          `json:"card_type_id,omitempty"`
	BankID              string          `json:"bank_id,omitempty"`
}

// SaleTransactionResult reports a posted sale.
type SaleTransactionResult struct {
	IsSuccess     bool               `json:"is_success"`
	ResultType    outcome.ResultType `json:"result_type"`
	TransactionID string             `json:"transaction_id,omitempty"`
	ReceiptNumber string             `json:"receipt_number,omitempty"`
	Message       string             `json:"message,omitempty"`
	Err           error              `json:"-"`
}
