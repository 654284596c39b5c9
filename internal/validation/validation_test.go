package validation_test

import (
	"testing"

	"github.com/georgemunganga/printa-pos/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFailFast(t *testing.T) {
	tests := []struct {
		name    string
		rules   []validation.Rule
		valid   bool
		message string
	}{
		{
			name:  "no rules",
			valid: true,
		},
		{
			name: "all pass",
			rules: []validation.Rule{
				validation.Required("T1", "Terminal ID is required"),
				validation.MaxLength("T1", 10, "Terminal ID"),
			},
			valid: true,
		},
		{
			name: "stops at first violation",
			rules: []validation.Rule{
				validation.Required("  ", "Terminal ID is required"),
				validation.Required("", "Cashier ID is required"),
			},
			message: "Terminal ID is required",
		},
		{
			name: "length ceiling",
			rules: []validation.Rule{
				validation.MaxLength("TERMINAL-0001", 10, "Terminal ID"),
			},
			message: "Terminal ID cannot exceed 10 characters",
		},
		{
			name: "negative amount",
			rules: []validation.Rule{
				validation.NotNegative(decimal.NewFromInt(-1), "Starting cash amount cannot be negative"),
			},
			message: "Starting cash amount cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.FailFast(tt.rules...)
			assert.Equal(t, tt.valid, got.IsValid)
			assert.Equal(t, tt.message, got.ErrorMessage)
		})
	}
}

func TestCollect(t *testing.T) {
	msgs := validation.Collect(
		validation.Positive(decimal.Zero, "quantity must be greater than zero"),
		validation.NotNegative(decimal.Zero, "price cannot be negative"),
		validation.Positive(decimal.NewFromInt(-5), "amount must be greater than zero"),
	)
	assert.Equal(t, []string{"quantity must be greater than zero", "amount must be greater than zero"}, msgs)
}

func TestWhen(t *testing.T) {
	rule := validation.Required("", "Approval code is required")
	assert.Empty(t, validation.When(false, rule)())
	assert.Equal(t, "Approval code is required", validation.When(true, rule)())
}

func TestMaxLength_CountsCharacters(t *testing.T) {
	assert.Empty(t, validation.MaxLength("ñññññññññññ", 11, "Barcode")())
	assert.NotEmpty(t, validation.MaxLength("ñññññññññññ", 10, "Barcode")())
}
