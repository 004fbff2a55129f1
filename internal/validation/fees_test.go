package validation

import (
	"testing"

	"brokerfee/internal/errors"
	"brokerfee/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransactionInput(t *testing.T) {
	tests := []struct {
		name    string
		in      models.TransactionInput
		wantErr bool
		field   string
		message string
	}{
		{
			name: "valid",
			in:   models.TransactionInput{Quantity: 100, UnitPrice: decimal.RequireFromString("45.50")},
		},
		{
			name:    "zero quantity",
			in:      models.TransactionInput{Quantity: 0, UnitPrice: decimal.RequireFromString("45.50")},
			wantErr: true,
			field:   FieldQuantity,
			message: "must be greater than zero",
		},
		{
			name:    "negative price",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("-0.01")},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "must be greater than zero",
		},
		{
			name:    "three decimal places",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("1.234")},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "must have at most 2 decimal places",
		},
		{
			name: "trailing zeros within scale",
			in:   models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("45.500000")},
		},
		{
			name: "largest unit price",
			in:   models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("123456789012.34")},
		},
		{
			name:    "huge exponent",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("1e1000")},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "is too large",
		},
		{
			name:    "exponent far beyond int64",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("1e5000000")},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "is too large",
		},
		{
			name:    "unit price at the limit",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.New(1, PriceMaxIntegerDigits)},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "is too large",
		},
		{
			name:    "tiny negative exponent",
			in:      models.TransactionInput{Quantity: 1, UnitPrice: decimal.RequireFromString("1e-5000000")},
			wantErr: true,
			field:   FieldUnitPrice,
			message: "has too many digits",
		},
		{
			name:    "subtotal over the maximum",
			in:      models.TransactionInput{Quantity: 9_000_000_000_000_000, UnitPrice: decimal.RequireFromString("1000.00")},
			wantErr: true,
			field:   FieldQuantity,
			message: "makes the subtotal too large",
		},
		{
			name: "subtotal at the maximum",
			in:   models.TransactionInput{Quantity: 1_000_000_000_000_000, UnitPrice: decimal.RequireFromString("1000")},
		},
		{
			name:    "quantity reported before price",
			in:      models.TransactionInput{Quantity: -1, UnitPrice: decimal.Zero},
			wantErr: true,
			field:   FieldQuantity,
			message: "must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransactionInput(tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			de, ok := errors.AsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrInvalidInput.Code, de.Code)
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}

func TestValidator_CollectsAllFields(t *testing.T) {
	v := New()
	v.TransactionInput(models.TransactionInput{})

	assert.False(t, v.Valid())
	require.Len(t, v.Errors, 2)
	assert.Equal(t, FieldQuantity, v.Errors[0].Field)
	assert.Equal(t, FieldUnitPrice, v.Errors[1].Field)
	assert.Equal(t, "unit_price: must be greater than zero", v.Errors[1].Error())
}

func TestValidator_KeepsFirstErrorPerField(t *testing.T) {
	v := New()
	v.AddError("quantity", "first")
	v.AddError("quantity", "second")

	require.Len(t, v.Errors, 1)
	assert.Equal(t, "first", v.Errors[0].Message)
}

func TestValidator_Finite(t *testing.T) {
	v := New()
	v.Finite("a", 1.5)
	assert.True(t, v.Valid())
	assert.NoError(t, v.Err())
}
