package pricing

import "github.com/shopspring/decimal"

// FuelCalculationType discriminates the two fuel cost models. Exactly one
// applies per line item; they are never summed.
type FuelCalculationType string

const (
	FuelByMotohours  FuelCalculationType = "motohours"
	FuelByKilometers FuelCalculationType = "kilometers"
)

// FuelParams covers both fuel models. The motohour model (generators,
// heaters, light towers) uses ConsumptionLitersPerHour and HoursPerDay; the
// kilometer model (vehicles) uses KilometersPerDay and ConsumptionPer100Km.
type FuelParams struct {
	CalculationType         FuelCalculationType
	ConsumptionLitersPerHour decimal.Decimal
	HoursPerDay             decimal.Decimal
	KilometersPerDay        decimal.Decimal
	ConsumptionPer100Km     decimal.Decimal
	FuelPricePerLiter       decimal.Decimal
	RentalPeriodDays        int
}

// FuelCost computes the fuel add-on for one line item.
func FuelCost(p FuelParams) decimal.Decimal {
	days := decimal.NewFromInt(int64(p.RentalPeriodDays))
	if days.IsNegative() {
		days = decimal.Zero
	}
	price := clampNonNegative(p.FuelPricePerLiter)

	var total decimal.Decimal
	switch p.CalculationType {
	case FuelByKilometers:
		totalKm := clampNonNegative(p.KilometersPerDay).Mul(days)
		liters := totalKm.Div(oneHundred).Mul(clampNonNegative(p.ConsumptionPer100Km))
		total = liters.Mul(price)
	default:
		// motohours is also the fallback for an unset discriminator
		total = clampNonNegative(p.ConsumptionLitersPerHour).
			Mul(clampNonNegative(p.HoursPerDay)).
			Mul(days).
			Mul(price)
	}
	return round2(total)
}

// VisitParams describes one technician visit: installation and disassembly
// share the formula but carry independent parameter sets. DistanceKm is the
// round trip; callers supply the already doubled figure.
type VisitParams struct {
	Technicians       int
	RatePerTechnician decimal.Decimal
	DistanceKm        decimal.Decimal
	TravelRatePerKm   decimal.Decimal
}

func visitCost(p VisitParams) decimal.Decimal {
	techs := decimal.NewFromInt(int64(p.Technicians))
	if techs.IsNegative() {
		techs = decimal.Zero
	}
	labor := techs.Mul(clampNonNegative(p.RatePerTechnician))
	travel := clampNonNegative(p.DistanceKm).Mul(clampNonNegative(p.TravelRatePerKm))
	return labor.Add(travel)
}

// InstallationCost computes the installation add-on.
func InstallationCost(p VisitParams) decimal.Decimal {
	return round2(visitCost(p))
}

// DisassemblyCost computes the disassembly add-on.
func DisassemblyCost(p VisitParams) decimal.Decimal {
	return round2(visitCost(p))
}

// TravelServiceParams describes recurring service visits during the rental.
// The trip count is the only multiplier any add-on applies on top of a visit.
type TravelServiceParams struct {
	Trips int
	Visit VisitParams
}

// TravelServiceCost computes the travel/service-visit add-on.
func TravelServiceCost(p TravelServiceParams) decimal.Decimal {
	trips := decimal.NewFromInt(int64(p.Trips))
	if trips.IsNegative() {
		trips = decimal.Zero
	}
	return round2(trips.Mul(visitCost(p.Visit)))
}

// MaintenanceParams is the parts, labor and travel cost of one maintenance
// interval. The total is charged once per line item regardless of how the
// rental length compares to the service interval.
type MaintenanceParams struct {
	FuelFilter1Cost  decimal.Decimal
	FuelFilter2Cost  decimal.Decimal
	OilFilterCost    decimal.Decimal
	AirFilter1Cost   decimal.Decimal
	AirFilter2Cost   decimal.Decimal
	EngineFilterCost decimal.Decimal
	OilCost          decimal.Decimal

	WorkHours       decimal.Decimal
	WorkRatePerHour decimal.Decimal

	TravelDistanceKm decimal.Decimal
	TravelRatePerKm  decimal.Decimal
}

// MaintenanceCost computes the maintenance add-on for one service interval.
func MaintenanceCost(p MaintenanceParams) decimal.Decimal {
	parts := clampNonNegative(p.FuelFilter1Cost).
		Add(clampNonNegative(p.FuelFilter2Cost)).
		Add(clampNonNegative(p.OilFilterCost)).
		Add(clampNonNegative(p.AirFilter1Cost)).
		Add(clampNonNegative(p.AirFilter2Cost)).
		Add(clampNonNegative(p.EngineFilterCost)).
		Add(clampNonNegative(p.OilCost))
	labor := clampNonNegative(p.WorkHours).Mul(clampNonNegative(p.WorkRatePerHour))
	travel := clampNonNegative(p.TravelDistanceKm).Mul(clampNonNegative(p.TravelRatePerKm))
	return round2(parts.Add(labor).Add(travel))
}

// ServiceItemSlot is one named service cost position. Override, when set,
// replaces the equipment's configured cost for that slot.
type ServiceItemSlot struct {
	ConfiguredCost decimal.Decimal
	Override       *decimal.Decimal
}

// ServiceItemsCost sums the admin-configured service cost items, honoring
// per-slot overrides.
func ServiceItemsCost(slots []ServiceItemSlot) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slots {
		cost := s.ConfiguredCost
		if s.Override != nil {
			cost = *s.Override
		}
		total = total.Add(clampNonNegative(cost))
	}
	return round2(total)
}

// SelectionCost sums the prices of selected additional-equipment or accessory
// entries and multiplies by the line item quantity.
func SelectionCost(prices []decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(clampNonNegative(p))
	}
	return round2(total.Mul(decimal.NewFromInt(int64(quantity))))
}
