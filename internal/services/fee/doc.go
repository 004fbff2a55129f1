/*
Package fee computes the settlement amount of a brokerage transaction.

A calculation takes a quantity of securities, a unit price and a flag telling
whether funds come from another bank, and produces these line items:

  - Subtotal: quantity × unit price
  - Commission: 3% of subtotal
  - VAT: 16% of the commission (never of the subtotal)
  - Registration fee: 0.1% of subtotal, never less than 5.00
  - Surcharge: 1.5% of subtotal, only for other-bank settlements
  - Total: subtotal plus every fee

Usage:

	calc := fee.NewFeeCalculator()
	breakdown, err := calc.Calculate(models.TransactionInput{
	    Quantity:  100,
	    UnitPrice: decimal.RequireFromString("45.50"),
	})

	// Or, with logging, metrics and quote IDs
	svc := fee.NewService(calc, fee.Config{}, metrics, logger)
	quote, err := svc.Calculate(ctx, input)

Rounding:

Amounts use decimal arithmetic. Each line item is computed from unrounded
intermediates and rounded once to two places, half away from zero. Total is
the unrounded sum rounded once, so it can differ by a cent from the sum of
the displayed lines.

Error Handling:

Invalid input yields an INVALID_INPUT DomainError naming the field
(quantity or unit_price). No partial breakdown is ever returned. Unit prices
must stay below 10^12 with at most 18 written fractional digits, and the
subtotal may not exceed 10^18; these bounds are checked before any rescaling.
*/
package fee
