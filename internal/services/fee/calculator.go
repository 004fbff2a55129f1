package fee

import (
	"brokerfee/internal/models"
	"brokerfee/internal/validation"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every amount is rounded to.
const MoneyPlaces = 2

// FeeCalculator derives a fee breakdown from a transaction input. It holds no
// mutable state and is safe for concurrent use.
type FeeCalculator struct {
	schedule models.FeeSchedule
}

func NewFeeCalculator() *FeeCalculator {
	return &FeeCalculator{schedule: models.DefaultFeeSchedule()}
}

// Schedule returns the rates the calculator applies.
func (f *FeeCalculator) Schedule() models.FeeSchedule {
	return f.schedule
}

// Calculate validates in and returns its breakdown. Line items are derived
// from unrounded intermediates and rounded once each; Total is the unrounded
// sum rounded once.
func (f *FeeCalculator) Calculate(in models.TransactionInput) (models.FeeBreakdown, error) {
	if err := validation.ValidateTransactionInput(in); err != nil {
		return models.FeeBreakdown{}, err
	}

	subtotal := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
	commission := subtotal.Mul(f.schedule.CommissionRate)
	vat := commission.Mul(f.schedule.VATRate)
	registration := decimal.Max(f.schedule.RegistrationMinimum, subtotal.Mul(f.schedule.RegistrationRate))

	surcharge := decimal.Zero
	if in.OtherBankSurcharge {
		surcharge = subtotal.Mul(f.schedule.SurchargeRate)
	}

	total := subtotal.Add(commission).Add(vat).Add(registration).Add(surcharge)

	return models.FeeBreakdown{
		Subtotal:         round(subtotal),
		Commission:       round(commission),
		VAT:              round(vat),
		RegistrationFee:  round(registration),
		Surcharge:        round(surcharge),
		Total:            round(total),
		Taxes:            round(vat.Add(registration)),
		SurchargeApplied: in.OtherBankSurcharge,
	}, nil
}

// round applies round-half-away-from-zero at MoneyPlaces.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
