package validation

import (
	"brokerfee/internal/models"

	"github.com/shopspring/decimal"
)

// Field names reported in INVALID_INPUT errors.
const (
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
)

// Unit price limits.
const (
	// PriceDecimalPlaces is the precision of a unit price.
	PriceDecimalPlaces = 2
	// PriceMaxScale bounds how many fractional digits may be written,
	// trailing zeros included.
	PriceMaxScale = 18
	// PriceMaxIntegerDigits bounds a unit price below 10^12.
	PriceMaxIntegerDigits = 12
)

// MaxSubtotal is the largest quantity × unit price accepted.
var MaxSubtotal = decimal.New(1, 18)

// TransactionInput validates a calculation request. Quantity is checked first.
// Size checks on the unit price run before anything that rescales it.
func (v *Validator) TransactionInput(in models.TransactionInput) {
	v.PositiveInt(FieldQuantity, in.Quantity)

	v.PositiveDecimal(FieldUnitPrice, in.UnitPrice)
	if !v.Has(FieldUnitPrice) {
		v.MaxScale(FieldUnitPrice, in.UnitPrice, PriceMaxScale)
	}
	if !v.Has(FieldUnitPrice) {
		v.MaxIntegerDigits(FieldUnitPrice, in.UnitPrice, PriceMaxIntegerDigits)
	}
	if !v.Has(FieldUnitPrice) {
		v.MaxDecimalPlaces(FieldUnitPrice, in.UnitPrice, PriceDecimalPlaces)
	}

	if v.Valid() {
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
		v.Check(subtotal.LessThanOrEqual(MaxSubtotal), FieldQuantity, "makes the subtotal too large")
	}
}

// ValidateTransactionInput returns an INVALID_INPUT error naming the first
// failing field, or nil.
func ValidateTransactionInput(in models.TransactionInput) error {
	v := New()
	v.TransactionInput(in)
	return v.Err()
}
