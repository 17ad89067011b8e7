package domain

// CalculationMethod names the discount policy a quote was created under.
// The arithmetic is identical for both values; the method drives the
// explanatory text shown on the printed quote.
type CalculationMethod string

const (
	CalculationMethodFirstDay    CalculationMethod = "first_day"
	CalculationMethodProgressive CalculationMethod = "progressive"
)

// PricingSchema is a global, admin-managed selection of the calculation
// method. Exactly one schema carries the default flag. A quote references one
// schema at creation time; historical quotes keep their stored totals, so the
// method of a referenced schema must not be reinterpreted.
type PricingSchema struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	CalculationMethod CalculationMethod `json:"calculation_method"`
	Description       string            `json:"description"`
	IsDefault         bool              `json:"is_default"`
}
