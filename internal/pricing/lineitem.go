package pricing

import "github.com/shopspring/decimal"

// LineItemInput is everything needed to price one quote line item. PricePerDay
// and DiscountPercent come from the resolved tier; each add-on carries its own
// include flag and parameter set. Additional and accessory selections have no
// flag: a non-empty selection is itself the gate.
type LineItemInput struct {
	Quantity         int
	RentalPeriodDays int
	PricePerDay      decimal.Decimal
	DiscountPercent  decimal.Decimal
	Method           CalculationMethod

	IncludeFuelCost bool
	Fuel            FuelParams

	IncludeInstallationCost bool
	Installation            VisitParams

	IncludeDisassemblyCost bool
	Disassembly            VisitParams

	IncludeTravelServiceCost bool
	TravelService            TravelServiceParams

	IncludeMaintenanceCost bool
	Maintenance            MaintenanceParams

	IncludeServiceItems bool
	ServiceItems        []ServiceItemSlot

	AdditionalPrices []decimal.Decimal
	AccessoryPrices  []decimal.Decimal
}

// LineItemBreakdown holds every sub-total of one line item. Sub-totals are
// computed for display even when their include flag is off; only Total gates
// them.
type LineItemBreakdown struct {
	BaseRental    decimal.Decimal
	Fuel          decimal.Decimal
	Installation  decimal.Decimal
	Disassembly   decimal.Decimal
	TravelService decimal.Decimal
	Maintenance   decimal.Decimal
	ServiceItems  decimal.Decimal
	Additional    decimal.Decimal
	Accessories   decimal.Decimal
	Total         decimal.Decimal
}

// ComputeLineTotal prices one line item: discounted base rental plus every
// enabled add-on plus selected additional equipment and accessories.
func ComputeLineTotal(in LineItemInput) LineItemBreakdown {
	fuel := in.Fuel
	fuel.RentalPeriodDays = in.RentalPeriodDays

	b := LineItemBreakdown{
		BaseRental:    BaseRentalTotal(in.PricePerDay, in.DiscountPercent, in.Quantity, in.RentalPeriodDays, in.Method),
		Fuel:          FuelCost(fuel),
		Installation:  InstallationCost(in.Installation),
		Disassembly:   DisassemblyCost(in.Disassembly),
		TravelService: TravelServiceCost(in.TravelService),
		Maintenance:   MaintenanceCost(in.Maintenance),
		ServiceItems:  ServiceItemsCost(in.ServiceItems),
		Additional:    SelectionCost(in.AdditionalPrices, in.Quantity),
		Accessories:   SelectionCost(in.AccessoryPrices, in.Quantity),
	}

	total := b.BaseRental
	if in.IncludeFuelCost {
		total = total.Add(b.Fuel)
	}
	if in.IncludeInstallationCost {
		total = total.Add(b.Installation)
	}
	if in.IncludeDisassemblyCost {
		total = total.Add(b.Disassembly)
	}
	if in.IncludeTravelServiceCost {
		total = total.Add(b.TravelService)
	}
	if in.IncludeMaintenanceCost {
		total = total.Add(b.Maintenance)
	}
	if in.IncludeServiceItems {
		total = total.Add(b.ServiceItems)
	}
	total = total.Add(b.Additional).Add(b.Accessories)

	b.Total = round2(total)
	return b
}
