package models

import "github.com/shopspring/decimal"

// Currency is the single settlement currency (bolívares).
const Currency = "VES"

// FeeSchedule holds the rates applied to every brokerage transaction.
type FeeSchedule struct {
	CommissionRate      decimal.Decimal `json:"commission_rate"`
	VATRate             decimal.Decimal `json:"vat_rate"`
	RegistrationRate    decimal.Decimal `json:"registration_rate"`
	RegistrationMinimum decimal.Decimal `json:"registration_minimum"`
	SurchargeRate       decimal.Decimal `json:"surcharge_rate"`
}

// DefaultFeeSchedule returns the brokerage's fixed rate table.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		CommissionRate:      decimal.RequireFromString("0.03"),  // 3% of subtotal
		VATRate:             decimal.RequireFromString("0.16"),  // 16% of commission only
		RegistrationRate:    decimal.RequireFromString("0.001"), // 0.1% of subtotal
		RegistrationMinimum: decimal.RequireFromString("5.00"),
		SurchargeRate:       decimal.RequireFromString("0.015"), // 1.5% of subtotal, other bank only
	}
}

// TransactionInput is a complete snapshot of a calculation request.
type TransactionInput struct {
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	OtherBankSurcharge bool            `json:"other_bank_surcharge"`
}

// FeeBreakdown is the result of one calculation. Every amount is rounded
// to two decimal places.
type FeeBreakdown struct {
	Subtotal         decimal.Decimal
	Commission       decimal.Decimal
	VAT              decimal.Decimal
	RegistrationFee  decimal.Decimal
	Surcharge        decimal.Decimal
	Total            decimal.Decimal
	Taxes            decimal.Decimal // VAT plus registration fee
	SurchargeApplied bool
}
