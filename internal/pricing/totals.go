package pricing

import "github.com/shopspring/decimal"

// DefaultVATRate is the Polish standard VAT rate, applied when a quote does
// not set one explicitly.
var DefaultVATRate = decimal.NewFromInt(23)

// QuoteTotals is the aggregate of all line item totals on one quote.
type QuoteTotals struct {
	TotalNet   decimal.Decimal
	VATAmount  decimal.Decimal
	TotalGross decimal.Decimal
}

// ComputeQuoteTotals sums line item totals into the quote net total and
// applies the VAT rate. Totals are persisted at submission time and never
// recomputed from live equipment pricing afterwards.
func ComputeQuoteTotals(itemTotals []decimal.Decimal, vatRate decimal.Decimal) QuoteTotals {
	rate := clampNonNegative(vatRate)

	net := decimal.Zero
	for _, t := range itemTotals {
		net = net.Add(t)
	}
	net = round2(net)
	vat := round2(net.Mul(rate).Div(oneHundred))

	return QuoteTotals{
		TotalNet:   net,
		VATAmount:  vat,
		TotalGross: net.Add(vat),
	}
}
