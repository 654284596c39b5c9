package store

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind FaultKind
		wantMsg  string
	}{
		{"deadline", context.DeadlineExceeded, FaultTimeout, context.DeadlineExceeded.Error()},
		{"query canceled", &pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"}, FaultTimeout, "canceling statement due to statement timeout"},
		{"bad password", &pq.Error{Code: "28P01", Message: "password authentication failed"}, FaultAuthentication, "password authentication failed"},
		{"connection", &pq.Error{Code: "08006", Message: "connection failure"}, FaultConnection, "connection failure"},
		{"raised", &pq.Error{Code: "P0001", Message: "Terminal T9 is not active"}, FaultRaised, "Terminal T9 is not active"},
		{"wrapped pq", pkgerrors.Wrap(&pq.Error{Code: "28000", Message: "no pg_hba.conf entry"}, "acquire connection"), FaultAuthentication, "no pg_hba.conf entry"},
		{"other", errors.New("boom"), FaultUnknown, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("sp_test", tt.err)
			f, ok := AsFault(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Equal(t, tt.wantMsg, f.Message)
			assert.Equal(t, "sp_test", f.Procedure)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	first := classify("sp_a", errors.New("boom"))
	second := classify("sp_b", first)
	assert.Same(t, first, second)
	assert.Nil(t, classify("sp_a", nil))
}
