package outcome

import (
	"fmt"
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/store"
)

// ResultType is the category of a finished operation. The values are
// disjoint; they carry no severity order.
type ResultType int

const (
	Success ResultType = iota
	Warning
	ValidationError
	BusinessError
	SystemError
)

var resultTypeNames = [...]string{"Success", "Warning", "ValidationError", "BusinessError", "SystemError"}

func (t ResultType) String() string {
	if t < Success || t > SystemError {
		return fmt.Sprintf("ResultType(%d)", int(t))
	}
	return resultTypeNames[t]
}

// MarshalText renders the type by name in JSON and logs.
func (t ResultType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (t *ResultType) UnmarshalText(b []byte) error {
	for i, name := range resultTypeNames {
		if name == string(b) {
			*t = ResultType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown result type %q", b)
}

// Succeeded is true for Success and Warning: a warning is a success the
// caller has to surface.
func (t ResultType) Succeeded() bool { return t == Success || t == Warning }

// HTTPStatus maps the type onto a response status.
func (t ResultType) HTTPStatus() int {
	switch t {
	case Success, Warning:
		return http.StatusOK
	case ValidationError:
		return http.StatusBadRequest
	case BusinessError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Outcome is a store response decoded once into a typed result.
type Outcome struct {
	Type    ResultType
	Code    string
	Message string
	// Row is the first returned row, when there was one.
	Row  store.Row
	Rows []store.Row
	// Payload is the expected output value for outcomes decided by an
	// output slot.
	Payload any
}

// Succeeded reports whether the outcome counts as success.
func (o Outcome) Succeeded() bool { return o.Type.Succeeded() }

// Invalid is a ValidationError outcome.
func Invalid(message string) Outcome {
	return Outcome{Type: ValidationError, Message: message}
}

// Failed is a SystemError outcome.
func Failed(message string) Outcome {
	return Outcome{Type: SystemError, Message: message}
}
