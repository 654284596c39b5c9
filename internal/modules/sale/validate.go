package sale

import (
	"fmt"
	"strings"

	"github.com/georgemunganga/printa-pos/internal/validation"
)

// Validate checks the whole request and reports every violation at once,
// items and payments numbered from 1.
func Validate(req *SaleTransactionRequest) validation.Result {
	if req == nil {
		return validation.Invalid("Sale transaction request cannot be null")
	}

	errs := validation.Collect(
		validation.Required(req.SessionID, "Session ID is required"),
		validation.MaxLength(req.SessionID, validation.CodeMaxLength, "Session ID"),
		validation.Required(req.UserID, "User ID is required"),
		validation.MaxLength(req.UserID, validation.IDMaxLength, "User ID"),
		validation.MaxLength(req.PrivilegeCardNumber, validation.CodeMaxLength, "Privilege card number"),
		validation.When(len(req.SalesItems) == 0, func() string { return "At least one sales item is required" }),
		validation.When(len(req.PaymentDetails) == 0, func() string { return "At least one payment method is required" }),
	)

	for i, it := range req.SalesItems {
		prefix := fmt.Sprintf("Sales item %d: ", i+1)
		for _, msg := range validation.Collect(
			validation.When(validation.Blank(it.ProductSKU) && validation.Blank(it.Barcode),
				func() string { return "Product SKU or barcode is required" }),
			validation.MaxLength(it.ProductSKU, validation.CodeMaxLength, "Product SKU"),
			validation.MaxLength(it.Barcode, validation.BarcodeMaxLength, "Barcode"),
			validation.Positive(it.Quantity, "Quantity must be greater than 0"),
			validation.NotNegative(it.UnitPrice, "Unit price cannot be negative"),
			validation.MaxLength(it.DiscountReasonID, validation.IDMaxLength, "Discount reason ID"),
		) {
			errs = append(errs, prefix+msg)
		}
	}

	for i, p := range req.PaymentDetails {
		prefix := fmt.Sprintf("Payment %d: ", i+1)
		for _, msg := range validation.Collect(
			validation.Required(p.PaymentMethodTypeID, "Payment method type ID is required"),
			validation.MaxLength(p.PaymentMethodTypeID, validation.IDMaxLength, "Payment method type ID"),
			validation.Positive(p.Amount, "Amount must be greater than 0"),
		) {
			errs = append(errs, prefix+msg)
		}
	}

	if len(errs) > 0 {
		return validation.Invalid("Validation errors: " + strings.Join(errs, "; "))
	}
	return validation.Valid()
}
