package pricing

import "github.com/shopspring/decimal"

// CalculationMethod selects the quote-level discount policy. The two methods
// share one arithmetic path: the discount percent carried by the resolved
// tier already encodes how much discount applies once that duration tier is
// reached. The method only changes how the discount is described to the
// customer, never the resulting number.
type CalculationMethod string

const (
	MethodFirstDay    CalculationMethod = "first_day"
	MethodProgressive CalculationMethod = "progressive"
)

var oneHundred = decimal.NewFromInt(100)

// round2 rounds a monetary amount to 2 decimal places, half up. Applied once
// at the boundary where a sub-total is stored, never inside a calculator.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// clampNonNegative maps negative inputs to zero. Add-on parameters are never
// validated upstream, so a bad distance or rate must not produce a negative
// cost.
func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// EffectivePricePerDay applies the tier discount to the base price per day.
func EffectivePricePerDay(basePricePerDay, discountPercent decimal.Decimal, method CalculationMethod) decimal.Decimal {
	_ = method // identical arithmetic for first_day and progressive
	base := clampNonNegative(basePricePerDay)
	pct := clampNonNegative(discountPercent)
	if pct.GreaterThan(oneHundred) {
		pct = oneHundred
	}
	return base.Mul(oneHundred.Sub(pct)).Div(oneHundred)
}

// BaseRentalTotal is the discounted rental cost for the whole line item:
// effective price per day times quantity times rental days.
func BaseRentalTotal(basePricePerDay, discountPercent decimal.Decimal, quantity, days int, method CalculationMethod) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}
	if days < 0 {
		days = 0
	}
	effective := EffectivePricePerDay(basePricePerDay, discountPercent, method)
	total := effective.Mul(decimal.NewFromInt(int64(quantity))).Mul(decimal.NewFromInt(int64(days)))
	return round2(total)
}
