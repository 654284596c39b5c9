package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockGatewayForTest creates a MockGateway whose controller is finished
// when the test ends.
func NewMockGatewayForTest(t *testing.T) *MockGateway {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockGateway(ctrl)
}
