package store

import "context"

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// Gateway invokes the store's named procedures.
//
// Execute returns the tabular result together with any output values. When no
// parameter is an output slot the Outputs map is empty.
type Gateway interface {
	Execute(ctx context.Context, procedure string, params ...Param) (*Response, error)
	Scalar(ctx context.Context, procedure string, params ...Param) (any, error)
	Ping(ctx context.Context) error
	ServerInfo(ctx context.Context) (string, error)
}
