package session

import (
	"errors"
	"testing"

	"github.com/georgemunganga/printa-pos/internal/store"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "terminal not active",
			err:  &store.Fault{Kind: store.FaultRaised, Message: "Terminal T1 is not active"},
			want: msgTerminalInactive,
		},
		{
			name: "cashier already open",
			err:  &store.Fault{Kind: store.FaultRaised, Message: "Cashier C1 already has an open session"},
			want: msgAlreadyOpen,
		},
		{
			name: "domain phrase wins over kind",
			err:  &store.Fault{Kind: store.FaultTimeout, Message: "Terminal T1 is not active"},
			want: msgTerminalInactive,
		},
		{
			name: "timeout",
			err:  &store.Fault{Kind: store.FaultTimeout, Message: "canceling statement due to statement timeout"},
			want: msgTimeout,
		},
		{
			name: "authentication",
			err:  &store.Fault{Kind: store.FaultAuthentication, Message: "password authentication failed"},
			want: msgAuthentication,
		},
		{
			name: "generic fault",
			err:  &store.Fault{Kind: store.FaultConnection, Message: "connection refused"},
			want: "Database error occurred: connection refused",
		},
		{
			name: "wrapped fault",
			err:  pkgerrors.Wrap(&store.Fault{Kind: store.FaultTimeout, Message: "timeout"}, "start"),
			want: msgTimeout,
		},
		{
			name: "not a store fault",
			err:  errors.New("boom"),
			want: msgUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyMessage(tt.err))
		})
	}
}
