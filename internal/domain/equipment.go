package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Equipment struct {
	ID                      int64           `json:"id"`
	CategoryID              int64           `json:"category_id"`
	Name                    string          `json:"name"`
	Model                   string          `json:"model"`
	Description             string          `json:"description"`
	FuelConsumptionLH       decimal.Decimal `json:"fuel_consumption_lh"`
	FuelConsumptionPer100Km decimal.Decimal `json:"fuel_consumption_per_100km"`
	Active                  bool            `json:"active"`
	CreatedOn               time.Time       `json:"created_on"`
}

// PricingTier is one duration range of an equipment's price list.
// PeriodEnd is nil for the open-ended "30+" range.
type PricingTier struct {
	ID              int64           `json:"id"`
	EquipmentID     int64           `json:"equipment_id"`
	PeriodStart     int             `json:"period_start"`
	PeriodEnd       *int            `json:"period_end,omitempty"`
	PricePerDay     decimal.Decimal `json:"price_per_day"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type AdditionalType string

const (
	AdditionalTypeAdditional  AdditionalType = "additional"
	AdditionalTypeAccessories AdditionalType = "accessories"
)

// MaxAdditionalPerType caps active entries per (equipment, type) pair.
// Enforced by the catalog service at creation time, not by the data layer.
const MaxAdditionalPerType = 4

type EquipmentAdditional struct {
	ID          int64           `json:"id"`
	EquipmentID int64           `json:"equipment_id"`
	Type        AdditionalType  `json:"type"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Position    int             `json:"position"`
	Active      bool            `json:"active"`
}

// EquipmentServiceCosts holds the maintenance configuration of one equipment;
// at most one row per equipment.
type EquipmentServiceCosts struct {
	EquipmentID              int64           `json:"equipment_id"`
	ServiceIntervalMonths    int             `json:"service_interval_months"`
	ServiceIntervalMotohours int             `json:"service_interval_motohours"`
	ServiceIntervalKm        int             `json:"service_interval_km"`
	WorkerHours              decimal.Decimal `json:"worker_hours"`
	WorkerCostPerHour        decimal.Decimal `json:"worker_cost_per_hour"`
}

// ServiceLaborItemName is the derived service item whose cost is kept in sync
// with WorkerHours * WorkerCostPerHour by an explicit sync operation.
const ServiceLaborItemName = "Roboczogodziny serwisowe"

type EquipmentServiceItem struct {
	ID          int64           `json:"id"`
	EquipmentID int64           `json:"equipment_id"`
	ItemName    string          `json:"item_name"`
	ItemCost    decimal.Decimal `json:"item_cost"`
	SortOrder   int             `json:"sort_order"`
}
