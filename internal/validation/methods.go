package validation

import (
	"fmt"
	"math"

	"brokerfee/internal/errors"

	"github.com/shopspring/decimal"
)

// FieldError is a single failed check.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator collects field errors in the order checks were made.
type Validator struct {
	Errors []FieldError
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make([]FieldError, 0)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records an error for field. Only the first error per field is kept.
func (v *Validator) AddError(field, message string) {
	if v.Has(field) {
		return
	}
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// Has reports whether field already failed a check.
func (v *Validator) Has(field string) bool {
	for _, e := range v.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Finite rejects NaN and infinities.
func (v *Validator) Finite(field string, value float64) {
	v.Check(!math.IsNaN(value) && !math.IsInf(value, 0), field, "must be a finite number")
}

// PositiveInt checks value > 0.
func (v *Validator) PositiveInt(field string, value int64) {
	v.Check(value > 0, field, "must be greater than zero")
}

// PositiveDecimal checks value > 0.
func (v *Validator) PositiveDecimal(field string, value decimal.Decimal) {
	v.Check(value.IsPositive(), field, "must be greater than zero")
}

// MaxScale rejects values written with more than maxScale fractional digits,
// trailing zeros included. Run it before any check that rescales value.
func (v *Validator) MaxScale(field string, value decimal.Decimal, maxScale int32) {
	v.Check(value.Exponent() >= -maxScale, field, "has too many digits")
}

// MaxIntegerDigits rejects values of 10^digits or more. It reads the exponent
// and coefficient length only, so huge exponents stay cheap.
func (v *Validator) MaxIntegerDigits(field string, value decimal.Decimal, digits int) {
	magnitude := int64(value.Exponent()) + int64(value.NumDigits())
	v.Check(value.IsZero() || magnitude <= int64(digits), field, "is too large")
}

// MaxDecimalPlaces checks that value carries no more than places fractional digits.
func (v *Validator) MaxDecimalPlaces(field string, value decimal.Decimal, places int32) {
	v.Check(value.Equal(value.Truncate(places)), field,
		fmt.Sprintf("must have at most %d decimal places", places))
}

// Err returns the first recorded failure as an INVALID_INPUT error, or nil.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	first := v.Errors[0]
	return errors.InvalidInput(first.Field, first.Message)
}
