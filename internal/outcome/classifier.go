package outcome

import (
	"strings"

	"github.com/georgemunganga/printa-pos/internal/store"
)

const (
	MsgUnrecognized  = "No data returned or unrecognized response from stored procedure"
	MsgUnknownResult = "Unknown response from stored procedure"
	MsgRejected      = "The request was rejected by the store"
)

// DefaultBusinessCodes are the ErrorCode values the procedures use for domain
// rejections. Any other code is treated as a system fault.
var DefaultBusinessCodes = []string{
	"ITEM_NOT_FOUND",
	"ITEM_INACTIVE",
	"NO_PRICE",
	"TERMINAL_INACTIVE",
	"SESSION_ALREADY_OPEN",
	"SESSION_NOT_FOUND",
	"SESSION_CLOSED",
	"TRANSACTION_NOT_FOUND",
	"ALREADY_VOIDED",
	"NOT_COMPLETED",
	"INVALID_VOID_REASON",
	"APPROVAL_REQUIRED",
	"INVALID_APPROVAL_CODE",
	"INSUFFICIENT_PAYMENT",
	"INVALID_PAYMENT_METHOD",
	"OPERATOR_INACTIVE",
}

// Classifier decodes store responses into Outcomes. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	businessCodes map[string]struct{}
}

// NewClassifier builds a classifier recognizing the given business codes,
// or DefaultBusinessCodes when none are given.
func NewClassifier(businessCodes ...string) *Classifier {
	if len(businessCodes) == 0 {
		businessCodes = DefaultBusinessCodes
	}
	c := &Classifier{businessCodes: make(map[string]struct{}, len(businessCodes))}
	for _, code := range businessCodes {
		c.businessCodes[strings.ToUpper(code)] = struct{}{}
	}
	return c
}

type options struct {
	expectOutput        string
	acceptDataRows      bool
	preferDiscriminator bool
}

// Option adjusts a single Classify call.
type Option func(*options)

// ExpectOutput names the output slot that decides success when the
// procedure returns no rows.
func ExpectOutput(name string) Option {
	return func(o *options) { o.expectOutput = name }
}

// AcceptDataRows makes rows without a discriminator a Success. Lookups that
// return plain records use it.
func AcceptDataRows() Option {
	return func(o *options) { o.acceptDataRows = true }
}

// PreferDiscriminator checks Result/Status before the ErrorCode pair. Used by
// procedures whose Result column is the contract and ErrorCode is detail.
func PreferDiscriminator() Option {
	return func(o *options) { o.preferDiscriminator = true }
}

// Classify applies, in order: the ErrorCode/ErrorMessage pair, the
// Result/Status discriminator (swapped by PreferDiscriminator), the expected output slot, plain data rows,
// and finally a SystemError for anything unrecognized.
func (c *Classifier) Classify(resp *store.Response, opts ...Option) Outcome {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if row, ok := resp.First(); ok {
		checks := []func(store.Row) (Outcome, bool){c.fromErrorCode, fromDiscriminator}
		if o.preferDiscriminator {
			checks[0], checks[1] = checks[1], checks[0]
		}
		for _, check := range checks {
			if out, ok := check(row); ok {
				return withRows(out, resp, o)
			}
		}
		if o.acceptDataRows {
			return withRows(Outcome{Type: Success}, resp, o)
		}
		return withRows(Failed(MsgUnrecognized), resp, o)
	}

	if o.expectOutput != "" {
		if v, ok := resp.Output(o.expectOutput); ok {
			return Outcome{Type: Success, Payload: v}
		}
	}
	return Failed(MsgUnrecognized)
}

// fromErrorCode only fires on a non-blank code; NULL and "" mean no error.
func (c *Classifier) fromErrorCode(row store.Row) (Outcome, bool) {
	code := strings.TrimSpace(row.String("ErrorCode"))
	if code == "" {
		return Outcome{}, false
	}
	out := Outcome{
		Type:    SystemError,
		Code:    code,
		Message: firstNonEmpty(row.String("ErrorMessage"), row.String("Message"), code),
	}
	if _, known := c.businessCodes[strings.ToUpper(code)]; known {
		out.Type = BusinessError
	}
	return out, true
}

// fromDiscriminator dispatches on Result, then Status. An unknown Result
// value is a fault; an unknown Status value is ordinary data.
func fromDiscriminator(row store.Row) (Outcome, bool) {
	for _, col := range []string{"Result", "Status"} {
		if _, ok := row.Value(col); !ok {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(row.String(col))) {
		case "SUCCESS":
			return Outcome{Type: Success, Message: row.String("Message")}, true
		case "WARNING":
			return Outcome{Type: Warning, Message: firstNonEmpty(row.String("Message"), row.String("ErrorMessage"))}, true
		case "ERROR":
			return Outcome{
				Type:    BusinessError,
				Code:    row.String("ErrorCode"),
				Message: firstNonEmpty(row.String("Message"), row.String("ErrorMessage"), MsgRejected),
			}, true
		}
		if col == "Result" {
			return Failed(MsgUnknownResult), true
		}
	}
	return Outcome{}, false
}

func withRows(out Outcome, resp *store.Response, o options) Outcome {
	out.Rows = resp.Rows
	out.Row, _ = resp.First()
	if o.expectOutput != "" {
		if v, ok := resp.Output(o.expectOutput); ok {
			out.Payload = v
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
