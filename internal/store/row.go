package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one record of a tabular result. Column lookups are case-insensitive,
// so "Result", "result" and "RESULT" name the same column.
type Row struct {
	values map[string]any
}

// NewRow builds a Row from column/value pairs. []byte values are stored as text.
func NewRow(values map[string]any) Row {
	r := Row{values: make(map[string]any, len(values))}
	for k, v := range values {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		r.values[strings.ToLower(k)] = v
	}
	return r
}

// Has reports whether the column exists, whatever its value.
func (r Row) Has(col string) bool {
	_, ok := r.values[strings.ToLower(col)]
	return ok
}

// Value returns the column value when the column exists and is not NULL.
func (r Row) Value(col string) (any, bool) {
	v, ok := r.values[strings.ToLower(col)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Len is the number of columns.
func (r Row) Len() int { return len(r.values) }

// String returns the column as text, or "" when absent or NULL.
func (r Row) String(col string) string {
	v, ok := r.Value(col)
	if !ok {
		return ""
	}
	return toText(v)
}

// Decimal returns the column as a decimal, or zero when absent or unparseable.
func (r Row) Decimal(col string) decimal.Decimal {
	d, _ := r.parseDecimal(col)
	return d
}

// NullDecimal is Decimal with an explicit "no value" state.
func (r Row) NullDecimal(col string) decimal.NullDecimal {
	d, ok := r.parseDecimal(col)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

// Int returns the column as an int, or 0 when absent or unparseable.
func (r Row) Int(col string) int {
	n, _ := r.parseInt(col)
	return n
}

// NullInt returns nil when the column is absent or unparseable.
func (r Row) NullInt(col string) *int {
	n, ok := r.parseInt(col)
	if !ok {
		return nil
	}
	return &n
}

// Bool returns the column as a bool. Text that is not "true"/"false" is read
// as an integer, non-zero meaning true. Anything else is false.
func (r Row) Bool(col string) bool {
	v, ok := r.Value(col)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case int64:
		return t != 0
	case int32:
		return t != 0
	case int:
		return t != 0
	}
	s := strings.TrimSpace(toText(v))
	if strings.EqualFold(s, "true") {
		return true
	}
	if strings.EqualFold(s, "false") {
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0
	}
	return false
}

// Time returns the column as a time, or the zero time when absent or unparseable.
func (r Row) Time(col string) time.Time {
	t, _ := r.parseTime(col)
	return t
}

// NullTime returns nil when the column is absent or unparseable.
func (r Row) NullTime(col string) *time.Time {
	t, ok := r.parseTime(col)
	if !ok {
		return nil
	}
	return &t
}

// RequireString is String for columns that must be present.
func (r Row) RequireString(col string) (string, error) {
	v, ok := r.Value(col)
	if !ok {
		return "", missingColumn(col)
	}
	return toText(v), nil
}

// RequireInt is Int for columns that must be present and numeric.
func (r Row) RequireInt(col string) (int, error) {
	if _, ok := r.Value(col); !ok {
		return 0, missingColumn(col)
	}
	n, ok := r.parseInt(col)
	if !ok {
		return 0, fmt.Errorf("column %s: value %q is not an integer", col, r.String(col))
	}
	return n, nil
}

// RequireTime is Time for columns that must be present and parseable.
func (r Row) RequireTime(col string) (time.Time, error) {
	if _, ok := r.Value(col); !ok {
		return time.Time{}, missingColumn(col)
	}
	t, ok := r.parseTime(col)
	if !ok {
		return time.Time{}, fmt.Errorf("column %s: value %q is not a timestamp", col, r.String(col))
	}
	return t, nil
}

func missingColumn(col string) error {
	return fmt.Errorf("column %s is missing from the result", col)
}

func (r Row) parseDecimal(col string) (decimal.Decimal, bool) {
	v, ok := r.Value(col)
	if !ok {
		return decimal.Decimal{}, false
	}
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case int64:
		return decimal.NewFromInt(t), true
	case int32:
		return decimal.NewFromInt32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	}
	d, err := decimal.NewFromString(strings.TrimSpace(toText(v)))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func (r Row) parseInt(col string) (int, bool) {
	v, ok := r.Value(col)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return int(t), true
	case int32:
		return int(t), true
	case int:
		return t, true
	case float64:
		if t == math.Trunc(t) {
			return int(t), true
		}
		return 0, false
	case decimal.Decimal:
		if t.IsInteger() {
			return int(t.IntPart()), true
		}
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(toText(v)))
	if err != nil {
		return 0, false
	}
	return n, true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func (r Row) parseTime(col string) (time.Time, bool) {
	v, ok := r.Value(col)
	if !ok {
		return time.Time{}, false
	}
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := strings.TrimSpace(toText(v))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// ToText renders a store value as text; NULL is "".
func ToText(v any) string {
	if v == nil {
		return ""
	}
	return toText(v)
}

// ToInt converts a scalar store value to an int.
func ToInt(v any) (int, error) {
	r := NewRow(map[string]any{"v": v})
	if _, ok := r.Value("v"); !ok {
		return 0, nil
	}
	return r.RequireInt("v")
}
