package store

import (
	"context"
	"net"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// FaultKind groups data-access failures by what the caller can do about them.
type FaultKind int

const (
	FaultUnknown FaultKind = iota
	FaultTimeout
	FaultAuthentication
	FaultConnection
	// FaultRaised is an error raised on purpose by procedure code.
	FaultRaised
)

func (k FaultKind) String() string {
	switch k {
	case FaultTimeout:
		return "timeout"
	case FaultAuthentication:
		return "authentication"
	case FaultConnection:
		return "connection"
	case FaultRaised:
		return "raised"
	default:
		return "unknown"
	}
}

// Fault is a data-access failure as seen from outside the gateway.
type Fault struct {
	Kind      FaultKind
	Code      string
	Message   string
	Procedure string
	Err       error
}

func (f *Fault) Error() string {
	if f.Procedure != "" {
		return f.Procedure + ": " + f.Message
	}
	return f.Message
}

func (f *Fault) Unwrap() error { return f.Err }

// AsFault extracts a *Fault from err's chain.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

const (
	pqQueryCanceled  = pq.ErrorCode("57014")
	pqRaiseException = pq.ErrorCode("P0001")
	pqClassAuth      = pq.ErrorClass("28")
	pqClassConn      = pq.ErrorClass("08")
)

// classify turns a driver error into a *Fault. It is applied once, at the
// gateway boundary.
func classify(procedure string, err error) error {
	if err == nil {
		return nil
	}
	if f, ok := AsFault(err); ok {
		return f
	}
	f := &Fault{Kind: FaultUnknown, Message: err.Error(), Procedure: procedure, Err: err}

	var pqErr *pq.Error
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		f.Kind = FaultTimeout
	case errors.As(err, &pqErr):
		f.Code = string(pqErr.Code)
		f.Message = pqErr.Message
		switch {
		case pqErr.Code == pqQueryCanceled:
			f.Kind = FaultTimeout
		case pqErr.Code.Class() == pqClassAuth:
			f.Kind = FaultAuthentication
		case pqErr.Code.Class() == pqClassConn:
			f.Kind = FaultConnection
		case pqErr.Code == pqRaiseException:
			f.Kind = FaultRaised
		}
	case errors.As(err, &netErr):
		f.Kind = FaultConnection
		if netErr.Timeout() {
			f.Kind = FaultTimeout
		}
	}
	return f
}
