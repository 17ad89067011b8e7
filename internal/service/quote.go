package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/logger"
	"rentquote-backend/internal/pricing"
	"rentquote-backend/internal/repository"
)

type quoteService struct {
	quoteRepo     repository.QuoteRepository
	equipmentRepo repository.EquipmentRepository
	schemaRepo    repository.PricingSchemaRepository
	emailSvc      EmailService
	defaultVAT    decimal.Decimal
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	equipmentRepo repository.EquipmentRepository,
	schemaRepo repository.PricingSchemaRepository,
	emailSvc EmailService,
	defaultVAT decimal.Decimal,
) QuoteService {
	if defaultVAT.IsZero() {
		defaultVAT = pricing.DefaultVATRate
	}
	return &quoteService{
		quoteRepo:     quoteRepo,
		equipmentRepo: equipmentRepo,
		schemaRepo:    schemaRepo,
		emailSvc:      emailSvc,
		defaultVAT:    defaultVAT,
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, schemaID int64, creatorName, creatorEmail string) (*domain.Quote, error) {
	var schema *domain.PricingSchema
	var err error
	if schemaID == 0 {
		schema, err = s.schemaRepo.GetDefault(ctx)
	} else {
		schema, err = s.schemaRepo.GetByID(ctx, schemaID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pricing schema: %w", err)
	}

	quote := &domain.Quote{
		QuoteNumber:  newQuoteNumber(),
		SchemaID:     schema.ID,
		Status:       domain.QuoteStatusDraft,
		CreatorName:  creatorName,
		CreatorEmail: creatorEmail,
		TotalNet:     decimal.Zero,
		VatRate:      s.defaultVAT,
		TotalGross:   decimal.Zero,
	}
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func newQuoteNumber() string {
	return "Q-" + strings.ToUpper(uuid.New().String()[:8])
}

func (s *quoteService) GetQuote(ctx context.Context, id int64) (*domain.Quote, []domain.QuoteItem, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.quoteRepo.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return quote, items, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, status string, page, pageSize int) ([]domain.Quote, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return s.quoteRepo.List(ctx, status, page, pageSize)
}

func (s *quoteService) AddQuoteItem(ctx context.Context, quoteID int64, in AddQuoteItemInput) (*domain.QuoteItem, *pricing.LineItemBreakdown, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	schema, err := s.schemaRepo.GetByID(ctx, quote.SchemaID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pricing schema %d: %w", quote.SchemaID, err)
	}

	item, breakdown, err := s.priceLineItem(ctx, schema, in)
	if err != nil {
		return nil, nil, err
	}
	item.QuoteID = quoteID

	if err := s.quoteRepo.CreateItem(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, breakdown, nil
}

func (s *quoteService) PreviewLineItem(ctx context.Context, schemaID int64, in AddQuoteItemInput) (*pricing.LineItemBreakdown, error) {
	var schema *domain.PricingSchema
	var err error
	if schemaID == 0 {
		schema, err = s.schemaRepo.GetDefault(ctx)
	} else {
		schema, err = s.schemaRepo.GetByID(ctx, schemaID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pricing schema: %w", err)
	}
	_, breakdown, err := s.priceLineItem(ctx, schema, in)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// priceLineItem reads every pricing input once, resolves the tier and
// computes the full breakdown. Nothing is persisted here.
func (s *quoteService) priceLineItem(ctx context.Context, schema *domain.PricingSchema, in AddQuoteItemInput) (*domain.QuoteItem, *pricing.LineItemBreakdown, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load equipment %d: %w", in.EquipmentID, err)
	}

	tiers, err := s.equipmentRepo.GetTiers(ctx, in.EquipmentID)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := pricing.ResolveTier(toPricingTiers(tiers), in.RentalPeriodDays)
	if err != nil {
		var nte *pricing.NoTierError
		if errors.As(err, &nte) {
			nte.EquipmentName = eq.Name
		}
		return nil, nil, err
	}

	fuel := pricing.FuelParams{
		CalculationType:          in.FuelCalculationType,
		ConsumptionLitersPerHour: eq.FuelConsumptionLH,
		HoursPerDay:              in.HoursPerDay,
		KilometersPerDay:         in.KilometersPerDay,
		ConsumptionPer100Km:      eq.FuelConsumptionPer100Km,
		FuelPricePerLiter:        in.FuelPricePerLiter,
		RentalPeriodDays:         in.RentalPeriodDays,
	}

	maintenance, err := s.maintenanceParams(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	var slots []pricing.ServiceItemSlot
	if in.IncludeServiceItems {
		slots, err = s.serviceItemSlots(ctx, in)
		if err != nil {
			return nil, nil, err
		}
	}

	additionalPrices, err := s.selectionPrices(ctx, in.EquipmentID, in.SelectedAdditionalIDs, domain.AdditionalTypeAdditional)
	if err != nil {
		return nil, nil, err
	}
	accessoryPrices, err := s.selectionPrices(ctx, in.EquipmentID, in.SelectedAccessoryIDs, domain.AdditionalTypeAccessories)
	if err != nil {
		return nil, nil, err
	}

	lineInput := pricing.LineItemInput{
		Quantity:                 in.Quantity,
		RentalPeriodDays:         in.RentalPeriodDays,
		PricePerDay:              resolved.PricePerDay,
		DiscountPercent:          resolved.DiscountPercent,
		Method:                   pricing.CalculationMethod(schema.CalculationMethod),
		IncludeFuelCost:          in.IncludeFuelCost,
		Fuel:                     fuel,
		IncludeInstallationCost:  in.IncludeInstallationCost,
		Installation:             in.Installation,
		IncludeDisassemblyCost:   in.IncludeDisassemblyCost,
		Disassembly:              in.Disassembly,
		IncludeTravelServiceCost: in.IncludeTravelServiceCost,
		TravelService:            in.TravelService,
		IncludeMaintenanceCost:   in.IncludeMaintenanceCost,
		Maintenance:              maintenance,
		IncludeServiceItems:      in.IncludeServiceItems,
		ServiceItems:             slots,
		AdditionalPrices:         additionalPrices,
		AccessoryPrices:          accessoryPrices,
	}
	breakdown := pricing.ComputeLineTotal(lineInput)

	item := &domain.QuoteItem{
		EquipmentID:      in.EquipmentID,
		Quantity:         in.Quantity,
		RentalPeriodDays: in.RentalPeriodDays,
		PricePerDay:      resolved.PricePerDay,
		DiscountPercent:  resolved.DiscountPercent,

		IncludeFuelCost:         in.IncludeFuelCost,
		FuelCalculationType:     string(in.FuelCalculationType),
		FuelConsumptionLH:       eq.FuelConsumptionLH,
		HoursPerDay:             in.HoursPerDay,
		KilometersPerDay:        in.KilometersPerDay,
		FuelConsumptionPer100Km: eq.FuelConsumptionPer100Km,
		FuelPricePerLiter:       in.FuelPricePerLiter,
		TotalFuelCost:           breakdown.Fuel,

		IncludeInstallationCost:       in.IncludeInstallationCost,
		InstallationTechnicians:       in.Installation.Technicians,
		InstallationRatePerTechnician: in.Installation.RatePerTechnician,
		InstallationDistanceKm:        in.Installation.DistanceKm,
		InstallationTravelRatePerKm:   in.Installation.TravelRatePerKm,
		TotalInstallationCost:         breakdown.Installation,

		IncludeDisassemblyCost:       in.IncludeDisassemblyCost,
		DisassemblyTechnicians:       in.Disassembly.Technicians,
		DisassemblyRatePerTechnician: in.Disassembly.RatePerTechnician,
		DisassemblyDistanceKm:        in.Disassembly.DistanceKm,
		DisassemblyTravelRatePerKm:   in.Disassembly.TravelRatePerKm,
		TotalDisassemblyCost:         breakdown.Disassembly,

		IncludeTravelServiceCost:       in.IncludeTravelServiceCost,
		TravelServiceTrips:             in.TravelService.Trips,
		TravelServiceTechnicians:       in.TravelService.Visit.Technicians,
		TravelServiceRatePerTechnician: in.TravelService.Visit.RatePerTechnician,
		TravelServiceDistanceKm:        in.TravelService.Visit.DistanceKm,
		TravelServiceTravelRatePerKm:   in.TravelService.Visit.TravelRatePerKm,
		TotalTravelServiceCost:         breakdown.TravelService,

		IncludeMaintenanceCost:  in.IncludeMaintenanceCost,
		FuelFilter1Cost:         maintenance.FuelFilter1Cost,
		FuelFilter2Cost:         maintenance.FuelFilter2Cost,
		OilFilterCost:           maintenance.OilFilterCost,
		AirFilter1Cost:          maintenance.AirFilter1Cost,
		AirFilter2Cost:          maintenance.AirFilter2Cost,
		EngineFilterCost:        maintenance.EngineFilterCost,
		OilCost:                 maintenance.OilCost,
		ServiceWorkHours:        maintenance.WorkHours,
		ServiceWorkRatePerHour:  maintenance.WorkRatePerHour,
		ServiceTravelDistanceKm: maintenance.TravelDistanceKm,
		ServiceTravelRatePerKm:  maintenance.TravelRatePerKm,
		TotalMaintenanceCost:    breakdown.Maintenance,

		IncludeServiceItems:   in.IncludeServiceItems,
		TotalServiceItemsCost: breakdown.ServiceItems,

		SelectedAdditionalIDs: in.SelectedAdditionalIDs,
		SelectedAccessoryIDs:  in.SelectedAccessoryIDs,
		AdditionalCost:        breakdown.Additional,
		AccessoriesCost:       breakdown.Accessories,

		UserNotes:  in.UserNotes,
		TotalPrice: breakdown.Total,
	}
	return item, &breakdown, nil
}

// maintenanceParams fills unset labor figures from the equipment's service
// cost configuration. Absent configuration simply contributes nothing.
func (s *quoteService) maintenanceParams(ctx context.Context, in AddQuoteItemInput) (pricing.MaintenanceParams, error) {
	p := in.Maintenance
	if !in.IncludeMaintenanceCost {
		return p, nil
	}
	if !p.WorkHours.IsZero() || !p.WorkRatePerHour.IsZero() {
		return p, nil
	}
	costs, err := s.equipmentRepo.GetServiceCosts(ctx, in.EquipmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	p.WorkHours = costs.WorkerHours
	p.WorkRatePerHour = costs.WorkerCostPerHour
	return p, nil
}

func (s *quoteService) serviceItemSlots(ctx context.Context, in AddQuoteItemInput) ([]pricing.ServiceItemSlot, error) {
	items, err := s.equipmentRepo.GetServiceItems(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	slots := make([]pricing.ServiceItemSlot, 0, len(items))
	for _, it := range items {
		slot := pricing.ServiceItemSlot{ConfiguredCost: it.ItemCost}
		if override, ok := in.ServiceItemOverrides[it.SortOrder]; ok {
			o := override
			slot.Override = &o
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (s *quoteService) selectionPrices(ctx context.Context, equipmentID int64, ids []int64, wantType domain.AdditionalType) ([]decimal.Decimal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	entries, err := s.equipmentRepo.GetAdditionalByIDs(ctx, equipmentID, ids)
	if err != nil {
		return nil, err
	}
	var prices []decimal.Decimal
	for _, e := range entries {
		if e.Type == wantType {
			prices = append(prices, e.Price)
		}
	}
	return prices, nil
}

func (s *quoteService) RemoveQuoteItem(ctx context.Context, quoteID, itemID int64) error {
	items, err := s.quoteRepo.GetItems(ctx, quoteID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == itemID {
			return s.quoteRepo.DeleteItem(ctx, itemID)
		}
	}
	return repository.ErrNotFound
}

// SubmitQuote sums the persisted item totals, applies VAT and freezes the
// result on the quote. The stored item totals are the source of truth: tier
// edits made after items were saved do not affect a submitted quote.
func (s *quoteService) SubmitQuote(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	items, err := s.quoteRepo.GetItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("quote %s has no items", quote.QuoteNumber)
	}

	itemTotals := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		itemTotals = append(itemTotals, it.TotalPrice)
	}
	totals := pricing.ComputeQuoteTotals(itemTotals, quote.VatRate)

	quote.TotalNet = totals.TotalNet
	quote.TotalGross = totals.TotalGross
	if err := s.quoteRepo.UpdateTotals(ctx, quote); err != nil {
		return nil, err
	}
	quote.Status = domain.QuoteStatusPending
	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, domain.QuoteStatusPending); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendQuoteSubmitted(ctx, quote); err != nil {
			logger.Warn("Failed to send quote submission notification", "quote", quote.QuoteNumber, "error", err)
		}
	}
	return quote, nil
}

func (s *quoteService) UpdateStatus(ctx context.Context, quoteID int64, status domain.QuoteStatus) error {
	if !domain.ValidQuoteStatus(status) {
		return fmt.Errorf("unknown quote status %q", status)
	}
	if _, err := s.quoteRepo.GetByID(ctx, quoteID); err != nil {
		return err
	}
	return s.quoteRepo.UpdateStatus(ctx, quoteID, status)
}

func (s *quoteService) DeleteQuote(ctx context.Context, quoteID int64) error {
	return s.quoteRepo.Delete(ctx, quoteID)
}

func toPricingTiers(tiers []domain.PricingTier) []pricing.Tier {
	out := make([]pricing.Tier, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, pricing.Tier{
			PeriodStart:     t.PeriodStart,
			PeriodEnd:       t.PeriodEnd,
			PricePerDay:     t.PricePerDay,
			DiscountPercent: t.DiscountPercent,
		})
	}
	return out
}
