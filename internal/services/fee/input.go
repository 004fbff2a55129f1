package fee

import (
	"math"
	"strconv"
	"strings"

	"brokerfee/internal/errors"
	"brokerfee/internal/models"
	"brokerfee/internal/validation"

	"github.com/shopspring/decimal"
)

// MaxFieldLength bounds the raw text of a numeric field.
const MaxFieldLength = 64

// ParseInput builds a TransactionInput from raw text fields, such as query
// parameters or JSON numbers. Parse failures are INVALID_INPUT for the field.
// The returned input still has to pass Calculate's validation.
func ParseInput(quantity, unitPrice string, otherBank bool) (models.TransactionInput, error) {
	quantity = strings.TrimSpace(quantity)
	unitPrice = strings.TrimSpace(unitPrice)

	if quantity == "" {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldQuantity, "is required")
	}
	if len(quantity) > MaxFieldLength {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldQuantity, "is too long")
	}
	q, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldQuantity, "must be a whole number")
	}

	if unitPrice == "" {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldUnitPrice, "is required")
	}
	if len(unitPrice) > MaxFieldLength {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldUnitPrice, "is too long")
	}
	p, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return models.TransactionInput{}, errors.InvalidInput(validation.FieldUnitPrice, "must be a number")
	}

	return models.TransactionInput{
		Quantity:           q,
		UnitPrice:          p,
		OtherBankSurcharge: otherBank,
	}, nil
}

// InputFromFloats builds a TransactionInput from binary floating point values.
// NaN, infinities and fractional quantities are rejected.
func InputFromFloats(quantity, unitPrice float64, otherBank bool) (models.TransactionInput, error) {
	v := validation.New()
	v.Finite(validation.FieldQuantity, quantity)
	if !v.Has(validation.FieldQuantity) {
		v.Check(quantity == math.Trunc(quantity), validation.FieldQuantity, "must be a whole number")
		v.Check(quantity < math.MaxInt64 && quantity > math.MinInt64, validation.FieldQuantity, "is out of range")
	}
	v.Finite(validation.FieldUnitPrice, unitPrice)
	if err := v.Err(); err != nil {
		return models.TransactionInput{}, err
	}

	return models.TransactionInput{
		Quantity:           int64(quantity),
		UnitPrice:          decimal.NewFromFloat(unitPrice),
		OtherBankSurcharge: otherBank,
	}, nil
}
