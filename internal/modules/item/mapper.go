package item

import "github.com/georgemunganga/printa-pos/internal/store"

// Map projects a lookup row onto an item. Missing or unreadable columns take
// their zero value; it never fails.
//
// HasPromotion follows PromotionID, and a discounted FinalPrice never exceeds
// CurrentPrice.
func Map(row store.Row) ItemWithPromotions {
	it := ItemWithPromotions{
		Barcode:         row.String("Barcode"),
		SKU:             row.String("SKU"),
		ProductName:     row.String("ProductName"),
		ItemDescription: row.String("ItemDescription"),
		RetailPrice:     row.Decimal("RetailPrice"),
		CostPrice:       row.Decimal("CostPrice"),
		Department:      row.String("Department"),
		DepartmentCode:  row.String("DepartmentCode"),
		SubCategory:     row.String("SubCategory"),
		SubcategoryCode: row.String("SubcategoryCode"),
		ItemActive:      row.Bool("ItemActive"),
		IsDiscountable:  row.Bool("IsDiscountable"),

		CurrentPrice:     row.Decimal("CurrentPrice"),
		PriceDescription: row.String("PriceDescription"),
		PriceType:        row.String("PriceType"),

		PromotionID:           row.NullInt("PromotionID"),
		PromotionName:         row.String("PromotionName"),
		PromotionType:         row.String("PromotionType"),
		PromotionDescription:  row.String("PromotionDescription"),
		StartDate:             row.NullTime("StartDate"),
		EndDate:               row.NullTime("EndDate"),
		MinimumPurchaseAmount: row.NullDecimal("MinimumPurchaseAmount"),
		BuyQuantity:           row.NullInt("BuyQuantity"),
		GetQuantity:           row.NullInt("GetQuantity"),
		MaxUsagePerCustomer:   row.NullInt("MaxUsagePerCustomer"),
		MaxUsageTotal:         row.NullInt("MaxUsageTotal"),
		CurrentUsageCount:     row.Int("CurrentUsageCount"),

		FinalPrice:      row.Decimal("FinalPrice"),
		DiscountPercent: row.Decimal("DiscountPercent"),
		DiscountAmount:  row.Decimal("DiscountAmount"),
		SpecialPrice:    row.NullDecimal("SpecialPrice"),

		IsQualifyingItem: row.Bool("IsQualifyingItem"),
		IsRewardItem:     row.Bool("IsRewardItem"),
		SavingsAmount:    row.Decimal("SavingsAmount"),

		SalesTax:        row.String("SalesTax"),
		SalesTaxPercent: row.Decimal("SalesTaxPercent"),

		UOMFactor:        row.Int("UOMFactor"),
		BrandID:          row.String("BrandID"),
		BrandDescription: row.String("BrandDescription"),

		QueryTimestamp: row.Time("QueryTimestamp"),
		Status:         row.String("Status"),
	}

	it.HasPromotion = it.PromotionID != nil
	if discounted(it) && it.FinalPrice.GreaterThan(it.CurrentPrice) {
		it.FinalPrice = it.CurrentPrice
	}
	return it
}

func discounted(it ItemWithPromotions) bool {
	return it.DiscountAmount.IsPositive() || it.DiscountPercent.IsPositive()
}
