package session

import (
	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/shopspring/decimal"
)

// StartSessionRequest opens a cashier session on a terminal.
type StartSessionRequest struct {
	TerminalID     string          `json:"terminal_id"`
	CashierID      string          `json:"cashier_id"`
	StartingAmount decimal.Decimal `json:"starting_amount"`
	UserID         string          `json:"user_id"`
}

// CashierSessionResult reports a session start. Err holds the underlying
// fault, if any, for diagnostics only.
type CashierSessionResult struct {
	IsSuccess    bool               `json:"is_success"`
	ResultType   outcome.ResultType `json:"result_type"`
	SessionID    string             `json:"session_id,omitempty"`
	ErrorMessage string             `json:"error_message,omitempty"`
	Err          error              `json:"-"`
}

// Terminal is an active POS terminal.
type Terminal struct {
	TerminalID   string `json:"terminal_id"`
	TerminalName string `json:"terminal_name"`
	Location     string `json:"location"`
}
