package service

import (
	"context"

	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/pricing"
)

// AddQuoteItemInput carries the caller-supplied knobs for one quote line.
// Tier price and discount are never supplied by the caller; they are resolved
// from the equipment's price list at save time. Fuel consumption figures come
// from the equipment record.
type AddQuoteItemInput struct {
	EquipmentID      int64
	Quantity         int
	RentalPeriodDays int

	IncludeFuelCost     bool
	FuelCalculationType pricing.FuelCalculationType
	HoursPerDay         decimal.Decimal
	KilometersPerDay    decimal.Decimal
	FuelPricePerLiter   decimal.Decimal

	IncludeInstallationCost bool
	Installation            pricing.VisitParams

	IncludeDisassemblyCost bool
	Disassembly            pricing.VisitParams

	IncludeTravelServiceCost bool
	TravelService            pricing.TravelServiceParams

	IncludeMaintenanceCost bool
	Maintenance            pricing.MaintenanceParams

	IncludeServiceItems bool
	// ServiceItemOverrides replaces the configured cost of a service item
	// slot, keyed by the item's sort order.
	ServiceItemOverrides map[int]decimal.Decimal

	SelectedAdditionalIDs []int64
	SelectedAccessoryIDs  []int64
	UserNotes             string
}

type QuoteService interface {
	CreateQuote(ctx context.Context, schemaID int64, creatorName, creatorEmail string) (*domain.Quote, error)
	GetQuote(ctx context.Context, id int64) (*domain.Quote, []domain.QuoteItem, error)
	ListQuotes(ctx context.Context, status string, page, pageSize int) ([]domain.Quote, int, error)
	AddQuoteItem(ctx context.Context, quoteID int64, in AddQuoteItemInput) (*domain.QuoteItem, *pricing.LineItemBreakdown, error)
	RemoveQuoteItem(ctx context.Context, quoteID, itemID int64) error
	PreviewLineItem(ctx context.Context, schemaID int64, in AddQuoteItemInput) (*pricing.LineItemBreakdown, error)
	SubmitQuote(ctx context.Context, quoteID int64) (*domain.Quote, error)
	UpdateStatus(ctx context.Context, quoteID int64, status domain.QuoteStatus) error
	DeleteQuote(ctx context.Context, quoteID int64) error
}

type CatalogService interface {
	CreateEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.PricingTier, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error
	ListEquipment(ctx context.Context, categoryID int64, page, pageSize int) ([]domain.Equipment, int, error)

	UpdateTier(ctx context.Context, tier *domain.PricingTier) error
	AddAdditional(ctx context.Context, add *domain.EquipmentAdditional) error
	RemoveAdditional(ctx context.Context, id int64) error
	SetServiceCosts(ctx context.Context, costs *domain.EquipmentServiceCosts) error
	AddServiceItem(ctx context.Context, item *domain.EquipmentServiceItem) error
	GetServiceItems(ctx context.Context, equipmentID int64) ([]domain.EquipmentServiceItem, error)
}

type SchemaService interface {
	CreateSchema(ctx context.Context, schema *domain.PricingSchema) error
	ListSchemas(ctx context.Context) ([]domain.PricingSchema, error)
	UpdateSchema(ctx context.Context, schema *domain.PricingSchema) error
}

type MaintenanceService interface {
	SyncServiceWorkHours(ctx context.Context, equipmentID int64) error
	SyncAll(ctx context.Context) (int, error)
}

type EmailService interface {
	SendQuoteSubmitted(ctx context.Context, quote *domain.Quote) error
}
