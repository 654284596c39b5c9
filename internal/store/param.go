package store

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind is the store-side type of a parameter.
type Kind int

const (
	KindText Kind = iota
	KindDecimal
	KindInt
	KindBool
	KindDocument
	KindTimestamp
)

// Direction says whether a parameter carries a value in, out, or both.
type Direction int

const (
	In Direction = iota
	Out
	InOut
)

// Param is a named, typed procedure argument.
type Param struct {
	Name      string
	Kind      Kind
	Size      int // max characters for KindText, 0 = unbounded
	Value     any
	Direction Direction
}

// IsOutput reports whether the store writes back into this parameter.
func (p Param) IsOutput() bool { return p.Direction == Out || p.Direction == InOut }

// Validate checks the value against the declared size.
func (p Param) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("parameter name is required")
	}
	if p.Kind != KindText || p.Size <= 0 || p.Value == nil {
		return nil
	}
	s, ok := p.Value.(string)
	if !ok {
		return fmt.Errorf("parameter %s: expected text value, got %T", p.Name, p.Value)
	}
	if n := utf8.RuneCountInString(s); n > p.Size {
		return fmt.Errorf("parameter %s: value length %d exceeds %d", p.Name, n, p.Size)
	}
	return nil
}

// Text is a bounded input text parameter.
func Text(name string, size int, value string) Param {
	return Param{Name: name, Kind: KindText, Size: size, Value: value}
}

// NullableText is like Text but sends NULL for a blank value.
func NullableText(name string, size int, value string) Param {
	p := Text(name, size, value)
	if strings.TrimSpace(value) == "" {
		p.Value = nil
	}
	return p
}

// Decimal is an input numeric parameter.
func Decimal(name string, value decimal.Decimal) Param {
	return Param{Name: name, Kind: KindDecimal, Value: value}
}

// Int is an input integer parameter.
func Int(name string, value int64) Param {
	return Param{Name: name, Kind: KindInt, Value: value}
}

// Bool is an input boolean parameter.
func Bool(name string, value bool) Param {
	return Param{Name: name, Kind: KindBool, Value: value}
}

// Timestamp is an input timestamp parameter.
func Timestamp(name string, value time.Time) Param {
	return Param{Name: name, Kind: KindTimestamp, Value: value}
}

// Document is a structured (JSON) document parameter.
func Document(name string, value []byte) Param {
	return Param{Name: name, Kind: KindDocument, Value: string(value)}
}

// OutputText reserves an output slot of the given size.
func OutputText(name string, size int) Param {
	return Param{Name: name, Kind: KindText, Size: size, Direction: Out}
}
