package void

import (
	"time"

	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/shopspring/decimal"
)

// Transaction statuses the void workflow distinguishes.
const (
	StatusCompleted = "Completed"
	StatusVoided    = "Voided"
)

// VoidTransactionRequest asks the store to void a completed sale.
// RequiresApproval is copied from the selected VoidReason.
type VoidTransactionRequest struct {
	TransactionID    string `json:"transaction_id"`
	VoidReasonID     string `json:"void_reason_id"`
	VoidedBy         string `json:"voided_by"`
	ApprovalCode     string `json:"approval_code,omitempty"`
	UserID           string `json:"user_id"`
	RequiresApproval bool   `json:"requires_approval"`
}

// VoidTransactionResponse reports a void attempt. A Warning is a success
// that must be shown to the operator.
type VoidTransactionResponse struct {
	IsSuccess         bool               `json:"is_success"`
	ResultType        outcome.ResultType `json:"result_type"`
	Message           string             `json:"message,omitempty"`
	ErrorMessage      string             `json:"error_message,omitempty"`
	TransactionID     string             `json:"transaction_id,omitempty"`
	DetailRowsVoided  int                `json:"detail_rows_voided"`
	PaymentRowsVoided int                `json:"payment_rows_voided"`
	VoidedTimestamp   *time.Time         `json:"voided_timestamp,omitempty"`
	Err               error              `json:"-"`
}

// VoidReason is reference data explaining why a sale is voided.
type VoidReason struct {
	ReasonID          string `json:"reason_id"`
	ReasonDescription string `json:"reason_description"`
	RequiresApproval  bool   `json:"requires_approval"`
	IsActive          bool   `json:"is_active"`
}

// TransactionSummary is the header view used for eligibility and display.
type TransactionSummary struct {
	Found               bool            `json:"found"`
	TransactionID       string          `json:"transaction_id,omitempty"`
	TransactionDate     time.Time       `json:"transaction_date"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Status              string          `json:"status,omitempty"`
	CashierID           string          `json:"cashier_id,omitempty"`
	PrivilegeCardNumber string          `json:"privilege_card_number,omitempty"`
	ItemCount           int             `json:"item_count"`
	ErrorMessage        string          `json:"error_message,omitempty"`
}

// CanVoidResult is the answer of the eligibility check.
type CanVoidResult struct {
	CanVoid       bool   `json:"can_void"`
	Reason        string `json:"reason,omitempty"`
	CurrentStatus string `json:"current_status,omitempty"`
	Err           error  `json:"-"`
}
