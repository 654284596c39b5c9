package item

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemWithPromotions is a scanned item with its current price and the
// promotion that applies to it, if any.
type ItemWithPromotions struct {
	Barcode         string          `json:"barcode"`
	SKU             string          `json:"sku"`
	ProductName     string          `json:"product_name"`
	ItemDescription string          `json:"item_description"`
	RetailPrice     decimal.Decimal `json:"retail_price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	Department      string          `json:"department"`
	DepartmentCode  string          `json:"department_code"`
	SubCategory     string          `json:"sub_category"`
	SubcategoryCode string          `json:"subcategory_code"`
	ItemActive      bool            `json:"item_active"`
	IsDiscountable  bool            `json:"is_discountable"`

	CurrentPrice     decimal.Decimal `json:"current_price"`
	PriceDescription string          `json:"price_description"`
	PriceType        string          `json:"price_type"`

	PromotionID           *int                `json:"promotion_id"`
	PromotionName         string              `json:"promotion_name"`
	PromotionType         string              `json:"promotion_type"`
	PromotionDescription  string              `json:"promotion_description"`
	StartDate             *time.Time          `json:"start_date"`
	EndDate               *time.Time          `json:"end_date"`
	MinimumPurchaseAmount decimal.NullDecimal `json:"minimum_purchase_amount"`
	BuyQuantity           *int                `json:"buy_quantity"`
	GetQuantity           *int                `json:"get_quantity"`
	MaxUsagePerCustomer   *int                `json:"max_usage_per_customer"`
	MaxUsageTotal         *int                `json:"max_usage_total"`
	CurrentUsageCount     int                 `json:"current_usage_count"`

	FinalPrice      decimal.Decimal     `json:"final_price"`
	DiscountPercent decimal.Decimal     `json:"discount_percent"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	SpecialPrice    decimal.NullDecimal `json:"special_price"`

	HasPromotion     bool            `json:"has_promotion"`
	IsQualifyingItem bool            `json:"is_qualifying_item"`
	IsRewardItem     bool            `json:"is_reward_item"`
	SavingsAmount    decimal.Decimal `json:"savings_amount"`

	SalesTax        string          `json:"sales_tax"`
	SalesTaxPercent decimal.Decimal `json:"sales_tax_percent"`

	UOMFactor        int    `json:"uom_factor"`
	BrandID          string `json:"brand_id"`
	BrandDescription string `json:"brand_description"`

	QueryTimestamp time.Time `json:"query_timestamp"`
	Status         string    `json:"status"`
}

// Lookup error codes.
const (
	CodeInvalidBarcode = "INVALID_BARCODE"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeNoData         = "NO_DATA"
	CodeException      = "EXCEPTION"
)

// ItemLookupResult is the outcome of a barcode lookup.
type ItemLookupResult struct {
	Success      bool                `json:"success"`
	ErrorCode    string              `json:"error_code,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Item         *ItemWithPromotions `json:"item,omitempty"`
	QueryTime    time.Time           `json:"query_time"`
}
