package item

import (
	"testing"
	"time"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_EmptyRowIsZeroValue(t *testing.T) {
	got := Map(store.NewRow(map[string]any{}))

	assert.Equal(t, ItemWithPromotions{}, got)
	assert.False(t, got.HasPromotion)
	assert.True(t, got.FinalPrice.IsZero())
	assert.Empty(t, got.Barcode)
	assert.True(t, got.QueryTimestamp.IsZero())
}

func TestMap_UnparseableValuesDefault(t *testing.T) {
	got := Map(store.NewRow(map[string]any{
		"RetailPrice":    "n/a",
		"PromotionID":    "abc",
		"StartDate":      "yesterday",
		"UOMFactor":      "1.5",
		"ItemActive":     "maybe",
		"SpecialPrice":   nil,
		"BuyQuantity":    nil,
		"QueryTimestamp": 42.5,
	}))

	assert.True(t, got.RetailPrice.IsZero())
	assert.Nil(t, got.PromotionID)
	assert.False(t, got.HasPromotion)
	assert.Nil(t, got.StartDate)
	assert.Equal(t, 0, got.UOMFactor)
	assert.False(t, got.ItemActive)
	assert.False(t, got.SpecialPrice.Valid)
	assert.Nil(t, got.BuyQuantity)
}

func TestMap_BooleanEncodings(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{"1", true},
		{"0", false},
		{"True", true},
		{"false", false},
		{int64(2), true},
		{true, true},
		{"", false},
	}
	for _, tt := range tests {
		got := Map(store.NewRow(map[string]any{"ItemActive": tt.value}))
		assert.Equal(t, tt.want, got.ItemActive, "ItemActive=%v", tt.value)
	}
}

func TestMap_FullRow(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	got := Map(store.NewRow(map[string]any{
		"barcode":          "6001234567890",
		"SKU":              "SKU-7",
		"ProductName":      "Maize Meal 10kg",
		"RetailPrice":      "120.00",
		"CurrentPrice":     "110.00",
		"ItemActive":       "1",
		"PromotionID":      int64(77),
		"PromotionType":    "BOGO",
		"StartDate":        start,
		"BuyQuantity":      "2",
		"GetQuantity":      "1",
		"FinalPrice":       "99.00",
		"DiscountPercent":  "10",
		"DiscountAmount":   "11.00",
		"SavingsAmount":    "11.00",
		"SalesTaxPercent":  "16",
		"HasPromotion":     "0",
		"IsQualifyingItem": "true",
		"UOMFactor":        int64(1),
	}))

	assert.Equal(t, "6001234567890", got.Barcode)
	assert.True(t, got.ItemActive)
	require.NotNil(t, got.PromotionID)
	assert.Equal(t, 77, *got.PromotionID)
	assert.True(t, got.HasPromotion, "promotion id wins over the HasPromotion column")
	require.NotNil(t, got.StartDate)
	assert.Equal(t, start, *got.StartDate)
	assert.Equal(t, 2, *got.BuyQuantity)
	assert.True(t, decimal.RequireFromString("99").Equal(got.FinalPrice))
	assert.True(t, got.IsQualifyingItem)
}

func TestMap_FinalPriceNeverExceedsCurrentWhenDiscounted(t *testing.T) {
	got := Map(store.NewRow(map[string]any{
		"CurrentPrice":   "50.00",
		"FinalPrice":     "55.00",
		"DiscountAmount": "5.00",
	}))
	assert.True(t, decimal.RequireFromString("50").Equal(got.FinalPrice))

	got = Map(store.NewRow(map[string]any{
		"CurrentPrice": "50.00",
		"FinalPrice":   "55.00",
	}))
	assert.True(t, decimal.RequireFromString("55").Equal(got.FinalPrice), "undiscounted prices are left alone")
}

func TestPriceWithTax(t *testing.T) {
	it := &ItemWithPromotions{FinalPrice: decimal.RequireFromString("100.00"), SalesTaxPercent: decimal.RequireFromString("16")}
	assert.True(t, decimal.RequireFromString("116").Equal(PriceWithTax(it)))
	assert.True(t, PriceWithTax(nil).IsZero())
}
