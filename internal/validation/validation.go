// Package validation runs pre-flight checks on operator requests before any
// store call is made.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Column widths of the store's id and code parameters.
const (
	IDMaxLength      = 10
	BarcodeMaxLength = 18
	CodeMaxLength    = 20
)

// Result is the verdict of a validation run.
type Result struct {
	IsValid      bool
	ErrorMessage string
}

// Valid is the passing Result.
func Valid() Result { return Result{IsValid: true} }

// Invalid is a failing Result carrying message.
func Invalid(message string) Result { return Result{ErrorMessage: message} }

// Rule reports a violation message, or "" when the value is acceptable.
type Rule func() string

// FailFast runs rules in order and stops at the first violation.
func FailFast(rules ...Rule) Result {
	for _, rule := range rules {
		if msg := rule(); msg != "" {
			return Invalid(msg)
		}
	}
	return Valid()
}

// Collect runs every rule and returns all violation messages in order.
func Collect(rules ...Rule) []string {
	var msgs []string
	for _, rule := range rules {
		if msg := rule(); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// Required rejects a blank value.
func Required(value, message string) Rule {
	return func() string {
		if Blank(value) {
			return message
		}
		return ""
	}
}

// MaxLength rejects a value longer than max characters. Blank values pass;
// pair it with Required when the field is mandatory.
func MaxLength(value string, max int, field string) Rule {
	return func() string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("%s cannot exceed %d characters", field, max)
		}
		return ""
	}
}

// NotNegative rejects amounts below zero.
func NotNegative(value decimal.Decimal, message string) Rule {
	return func() string {
		if value.IsNegative() {
			return message
		}
		return ""
	}
}

// Positive rejects amounts at or below zero.
func Positive(value decimal.Decimal, message string) Rule {
	return func() string {
		if !value.IsPositive() {
			return message
		}
		return ""
	}
}

// When applies rule only if cond holds.
func When(cond bool, rule Rule) Rule {
	return func() string {
		if !cond {
			return ""
		}
		return rule()
	}
}
