package pricing

import "github.com/shopspring/decimal"

// IGVRate is the Peruvian value-added tax applied to every contract. The
// business operates under a single fixed rate.
var IGVRate = decimal.New(18, -2)

var hundred = decimal.NewFromInt(100)

// Line carries the priced inputs of one contract line. UnitPrice is the
// snapshot copied from the catalog, not a live reference.
type Line struct {
	EquipmentID int32
	Quantity    int32
	UnitPrice   decimal.Decimal
	PeriodCount int32
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineSubtotal is unit price * quantity * billing periods.
func LineSubtotal(unitPrice decimal.Decimal, quantity, periodCount int32) decimal.Decimal {
	return unitPrice.
		Mul(decimal.NewFromInt32(quantity)).
		Mul(decimal.NewFromInt32(periodCount))
}

// ComputeTotals aggregates line subtotals, applies the percentage discount,
// adds transport/operator surcharges to the taxable base and computes IGV.
// All arithmetic is exact decimal; rounding to two places happens only at
// the persistence and response boundaries, never between steps.
//
// Discount bounds are not checked here; validation belongs to the caller.
func ComputeTotals(lines []Line, discountPercent, transportFee, operatorFee decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineSubtotal(l.UnitPrice, l.Quantity, l.PeriodCount))
	}

	discount := subtotal.Mul(discountPercent).Div(hundred)
	base := subtotal.Sub(discount).Add(transportFee).Add(operatorFee)
	tax := base.Mul(IGVRate)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    base.Add(tax),
	}
}

// Rounded returns the totals rounded to two decimals, for persistence and
// API responses.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: t.Subtotal.Round(2),
		Discount: t.Discount.Round(2),
		Tax:      t.Tax.Round(2),
		Total:    t.Total.Round(2),
	}
}
