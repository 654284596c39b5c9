package session

import (
	"fmt"
	"strings"

	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
)

const (
	msgTerminalInactive = "The selected terminal is not active or does not exist. Please select a different terminal."
	msgAlreadyOpen      = "This cashier already has an open session on another terminal. Please close the existing session first."
	msgTimeout          = "Database connection timeout. Please try again."
	msgAuthentication   = "Database authentication failed. Please contact system administrator."
	msgUnexpected       = "An unexpected error occurred while starting the cashier session"
)

type friendlyRule struct {
	match   func(f *store.Fault) bool
	message func(f *store.Fault) string
}

func containsAll(words ...string) func(f *store.Fault) bool {
	return func(f *store.Fault) bool {
		for _, w := range words {
			if !strings.Contains(f.Message, w) {
				return false
			}
		}
		return true
	}
}

func kindIs(k store.FaultKind) func(f *store.Fault) bool {
	return func(f *store.Fault) bool { return f.Kind == k }
}

func fixed(msg string) func(*store.Fault) string {
	return func(*store.Fault) string { return msg }
}

// Most specific first; the last rule always matches.
var friendlyRules = []friendlyRule{
	{containsAll("Terminal", "not active"), fixed(msgTerminalInactive)},
	{containsAll("Cashier", "already has an open session"), fixed(msgAlreadyOpen)},
	{kindIs(store.FaultTimeout), fixed(msgTimeout)},
	{kindIs(store.FaultAuthentication), fixed(msgAuthentication)},
	{func(*store.Fault) bool { return true }, func(f *store.Fault) string {
		return fmt.Sprintf("Database error occurred: %s", f.Message)
	}},
}

// FriendlyMessage turns a session-start failure into a sentence an operator
// can act on. It always returns a message.
func FriendlyMessage(err error) string {
	f, ok := store.AsFault(err)
	if !ok {
		return msgUnexpected
	}
	for _, rule := range friendlyRules {
		if rule.match(f) {
			return rule.message(f)
		}
	}
	return msgUnexpected
}

// faultResultType treats exceptions raised on purpose by the procedure as
// business rejections; every other fault is a system error.
func faultResultType(err error) outcome.ResultType {
	if f, ok := store.AsFault(err); ok && f.Kind == store.FaultRaised {
		return outcome.BusinessError
	}
	return outcome.SystemError
}
