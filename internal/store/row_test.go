package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_CaseInsensitiveLookup(t *testing.T) {
	r := NewRow(map[string]any{"Result": "SUCCESS", "transactionid": []byte("T-1")})

	assert.True(t, r.Has("result"))
	assert.True(t, r.Has("RESULT"))
	assert.Equal(t, "SUCCESS", r.String("result"))
	assert.Equal(t, "T-1", r.String("TransactionID"))
	assert.False(t, r.Has("Message"))
	assert.Equal(t, "", r.String("Message"))
}

func TestRow_NullIsPresentButHasNoValue(t *testing.T) {
	r := NewRow(map[string]any{"PromotionID": nil})

	assert.True(t, r.Has("PromotionID"))
	_, ok := r.Value("PromotionID")
	assert.False(t, ok)
	assert.Nil(t, r.NullInt("PromotionID"))
}

func TestRow_Decimal(t *testing.T) {
	r := NewRow(map[string]any{
		"a": "12.50",
		"b": int64(3),
		"c": 1.25,
		"d": "abc",
		"e": []byte("7.10"),
	})

	assert.True(t, decimal.RequireFromString("12.50").Equal(r.Decimal("a")))
	assert.True(t, decimal.NewFromInt(3).Equal(r.Decimal("b")))
	assert.True(t, decimal.RequireFromString("1.25").Equal(r.Decimal("c")))
	assert.True(t, r.Decimal("d").IsZero())
	assert.True(t, r.Decimal("missing").IsZero())
	assert.True(t, decimal.RequireFromString("7.1").Equal(r.Decimal("e")))

	assert.False(t, r.NullDecimal("d").Valid)
	assert.True(t, r.NullDecimal("a").Valid)
}

func TestRow_Int(t *testing.T) {
	r := NewRow(map[string]any{"a": int64(4), "b": " 12 ", "c": "3.5", "d": 2.0})

	assert.Equal(t, 4, r.Int("a"))
	assert.Equal(t, 12, r.Int("b"))
	assert.Equal(t, 0, r.Int("c"))
	assert.Equal(t, 2, r.Int("d"))
	assert.Nil(t, r.NullInt("c"))
	require.NotNil(t, r.NullInt("b"))
	assert.Equal(t, 12, *r.NullInt("b"))
}

func TestRow_Bool(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"native true", true, true},
		{"text True", "True", true},
		{"text false", "false", false},
		{"integer text one", "1", true},
		{"integer text zero", "0", false},
		{"integer text two", "2", true},
		{"int64", int64(1), true},
		{"garbage", "yes", false},
		{"null", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow(map[string]any{"flag": tt.value})
			assert.Equal(t, tt.want, r.Bool("flag"))
		})
	}
}

func TestRow_Time(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	r := NewRow(map[string]any{
		"native": ts,
		"text":   "2025-03-14 09:30:00",
		"date":   "2025-03-14",
		"bad":    "yesterday",
	})

	assert.True(t, ts.Equal(r.Time("native")))
	assert.True(t, ts.Equal(r.Time("text")))
	assert.Equal(t, 14, r.Time("date").Day())
	assert.True(t, r.Time("bad").IsZero())
	assert.Nil(t, r.NullTime("bad"))
	assert.Nil(t, r.NullTime("missing"))
}

func TestRow_RequireGetters(t *testing.T) {
	r := NewRow(map[string]any{"n": "x", "s": "ok", "null": nil})

	s, err := r.RequireString("s")
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	_, err = r.RequireString("null")
	assert.Error(t, err)

	_, err = r.RequireInt("n")
	assert.Error(t, err)

	_, err = r.RequireTime("absent")
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	n, err := ToInt(int64(2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ToInt("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = ToInt(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ToInt("many")
	assert.Error(t, err)
}
