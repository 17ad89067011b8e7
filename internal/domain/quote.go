package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// ValidQuoteStatus reports whether s names a known status. Any known status
// is settable by an admin; the source system never enforced a strict machine.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// Quote aggregates line items. TotalNet, VatRate and TotalGross are computed
// once at submission time and persisted; later edits to equipment pricing
// never change a saved quote.
type Quote struct {
	ID           int64           `json:"id"`
	QuoteNumber  string          `json:"quote_number"`
	SchemaID     int64           `json:"schema_id"`
	Status       QuoteStatus     `json:"status"`
	CreatorName  string          `json:"creator_name"`
	CreatorEmail string          `json:"creator_email"`
	TotalNet     decimal.Decimal `json:"total_net"`
	VatRate      decimal.Decimal `json:"vat_rate"`
	TotalGross   decimal.Decimal `json:"total_gross"`
	CreatedOn    time.Time       `json:"created_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}

// QuoteItem is one priced line of a quote. Everything on it is a snapshot
// resolved at save time: the tier price, the discount, each add-on parameter
// set and each computed sub-total. Selected additional equipment and
// accessories are explicit ID lists, not data smuggled through free text.
type QuoteItem struct {
	ID          int64 `json:"id"`
	QuoteID     int64 `json:"quote_id"`
	EquipmentID int64 `json:"equipment_id"`

	Quantity         int             `json:"quantity"`
	RentalPeriodDays int             `json:"rental_period_days"`
	PricePerDay      decimal.Decimal `json:"price_per_day"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`

	IncludeFuelCost         bool            `json:"include_fuel_cost"`
	FuelCalculationType     string          `json:"fuel_calculation_type"`
	FuelConsumptionLH       decimal.Decimal `json:"fuel_consumption_lh"`
	HoursPerDay             decimal.Decimal `json:"hours_per_day"`
	KilometersPerDay        decimal.Decimal `json:"kilometers_per_day"`
	FuelConsumptionPer100Km decimal.Decimal `json:"fuel_consumption_per_100km"`
	FuelPricePerLiter       decimal.Decimal `json:"fuel_price_per_liter"`
	TotalFuelCost           decimal.Decimal `json:"total_fuel_cost"`

	IncludeInstallationCost       bool            `json:"include_installation_cost"`
	InstallationTechnicians       int             `json:"installation_technicians"`
	InstallationRatePerTechnician decimal.Decimal `json:"installation_rate_per_technician"`
	InstallationDistanceKm        decimal.Decimal `json:"installation_distance_km"`
	InstallationTravelRatePerKm   decimal.Decimal `json:"installation_travel_rate_per_km"`
	TotalInstallationCost         decimal.Decimal `json:"total_installation_cost"`

	IncludeDisassemblyCost       bool            `json:"include_disassembly_cost"`
	DisassemblyTechnicians       int             `json:"disassembly_technicians"`
	DisassemblyRatePerTechnician decimal.Decimal `json:"disassembly_rate_per_technician"`
	DisassemblyDistanceKm        decimal.Decimal `json:"disassembly_distance_km"`
	DisassemblyTravelRatePerKm   decimal.Decimal `json:"disassembly_travel_rate_per_km"`
	TotalDisassemblyCost         decimal.Decimal `json:"total_disassembly_cost"`

	IncludeTravelServiceCost       bool            `json:"include_travel_service_cost"`
	TravelServiceTrips             int             `json:"travel_service_trips"`
	TravelServiceTechnicians       int             `json:"travel_service_technicians"`
	TravelServiceRatePerTechnician decimal.Decimal `json:"travel_service_rate_per_technician"`
	TravelServiceDistanceKm        decimal.Decimal `json:"travel_service_distance_km"`
	TravelServiceTravelRatePerKm   decimal.Decimal `json:"travel_service_travel_rate_per_km"`
	TotalTravelServiceCost         decimal.Decimal `json:"total_travel_service_cost"`

	IncludeMaintenanceCost  bool            `json:"include_maintenance_cost"`
	FuelFilter1Cost         decimal.Decimal `json:"fuel_filter1_cost"`
	FuelFilter2Cost         decimal.Decimal `json:"fuel_filter2_cost"`
	OilFilterCost           decimal.Decimal `json:"oil_filter_cost"`
	AirFilter1Cost          decimal.Decimal `json:"air_filter1_cost"`
	AirFilter2Cost          decimal.Decimal `json:"air_filter2_cost"`
	EngineFilterCost        decimal.Decimal `json:"engine_filter_cost"`
	OilCost                 decimal.Decimal `json:"oil_cost"`
	ServiceWorkHours        decimal.Decimal `json:"service_work_hours"`
	ServiceWorkRatePerHour  decimal.Decimal `json:"service_work_rate_per_hour"`
	ServiceTravelDistanceKm decimal.Decimal `json:"service_travel_distance_km"`
	ServiceTravelRatePerKm  decimal.Decimal `json:"service_travel_rate_per_km"`
	TotalMaintenanceCost    decimal.Decimal `json:"total_maintenance_cost"`

	IncludeServiceItems   bool            `json:"include_service_items"`
	TotalServiceItemsCost decimal.Decimal `json:"total_service_items_cost"`

	SelectedAdditionalIDs []int64         `json:"selected_additional_ids"`
	SelectedAccessoryIDs  []int64         `json:"selected_accessory_ids"`
	AdditionalCost        decimal.Decimal `json:"additional_cost"`
	AccessoriesCost       decimal.Decimal `json:"accessories_cost"`

	UserNotes  string          `json:"user_notes"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedOn  time.Time       `json:"created_on"`
}
