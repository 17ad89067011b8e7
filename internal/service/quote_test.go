package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/pricing"
	"rentquote-backend/internal/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int { return &v }

func newQuoteServiceForTest(quoteRepo *MockQuoteRepo, equipmentRepo *MockEquipmentRepo, schemaRepo *MockSchemaRepo, emailSvc *MockEmailService) QuoteService {
	var email EmailService
	if emailSvc != nil {
		email = emailSvc
	}
	return NewQuoteService(quoteRepo, equipmentRepo, schemaRepo, email, dec("23"))
}

func TestQuoteService_CreateQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultSchema", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), schemaRepo, nil)

		schemaRepo.On("GetDefault", ctx).Return(&domain.PricingSchema{ID: 3, IsDefault: true}, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)

		quote, err := svc.CreateQuote(ctx, 0, "Anna", "anna@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), quote.SchemaID)
		assert.Equal(t, domain.QuoteStatusDraft, quote.Status)
		assert.True(t, strings.HasPrefix(quote.QuoteNumber, "Q-"))
		assert.Len(t, quote.QuoteNumber, 10)
		assert.True(t, quote.VatRate.Equal(dec("23")))
	})

	t.Run("ExplicitSchema", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), schemaRepo, nil)

		schemaRepo.On("GetByID", ctx, int64(7)).Return(&domain.PricingSchema{ID: 7}, nil)
		quoteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil)

		quote, err := svc.CreateQuote(ctx, 7, "Anna", "anna@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), quote.SchemaID)
	})

	t.Run("SchemaNotFound", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), schemaRepo, nil)

		schemaRepo.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.CreateQuote(ctx, 99, "Anna", "anna@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestQuoteService_AddQuoteItem(t *testing.T) {
	ctx := context.Background()

	quote := &domain.Quote{ID: 1, SchemaID: 2, Status: domain.QuoteStatusDraft, VatRate: dec("23")}
	schema := &domain.PricingSchema{ID: 2, CalculationMethod: domain.CalculationMethodFirstDay}
	generator := &domain.Equipment{ID: 5, Name: "Generator 20kVA", FuelConsumptionLH: dec("3.25")}
	tiers := []domain.PricingTier{
		{EquipmentID: 5, PeriodStart: 1, PeriodEnd: intPtr(7), PricePerDay: dec("120"), DiscountPercent: dec("0")},
		{EquipmentID: 5, PeriodStart: 8, PeriodEnd: intPtr(18), PricePerDay: dec("100"), DiscountPercent: dec("10")},
	}

	t.Run("SnapshotsResolvedTierAndTotals", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		equipmentRepo := new(MockEquipmentRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, schemaRepo, nil)

		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		schemaRepo.On("GetByID", ctx, int64(2)).Return(schema, nil)
		equipmentRepo.On("GetByID", ctx, int64(5)).Return(generator, nil)
		equipmentRepo.On("GetTiers", ctx, int64(5)).Return(tiers, nil)

		var saved *domain.QuoteItem
		quoteRepo.On("CreateItem", ctx, mock.AnythingOfType("*domain.QuoteItem")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.QuoteItem)
			}).
			Return(nil)

		item, breakdown, err := svc.AddQuoteItem(ctx, 1, AddQuoteItemInput{
			EquipmentID:         5,
			Quantity:            1,
			RentalPeriodDays:    10,
			IncludeFuelCost:     true,
			FuelCalculationType: pricing.FuelByMotohours,
			HoursPerDay:         dec("8"),
			FuelPricePerLiter:   dec("6"),
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, int64(1), saved.QuoteID)

		// 8-18 day tier applies: 100/day at 10% -> 90 * 10 days = 900.
		assert.True(t, item.PricePerDay.Equal(dec("100")))
		assert.True(t, item.DiscountPercent.Equal(dec("10")))
		assert.True(t, breakdown.BaseRental.Equal(dec("900.00")), "base rental = %s", breakdown.BaseRental)

		// Fuel: 3.25 l/h * 8 h/day * 10 days * 6 zl/l = 1560.
		assert.True(t, item.FuelConsumptionLH.Equal(dec("3.25")))
		assert.True(t, breakdown.Fuel.Equal(dec("1560.00")), "fuel = %s", breakdown.Fuel)
		assert.True(t, item.TotalPrice.Equal(dec("2460.00")), "total = %s", item.TotalPrice)
	})

	t.Run("NoTierForDuration", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		equipmentRepo := new(MockEquipmentRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, schemaRepo, nil)

		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		schemaRepo.On("GetByID", ctx, int64(2)).Return(schema, nil)
		equipmentRepo.On("GetByID", ctx, int64(5)).Return(generator, nil)
		equipmentRepo.On("GetTiers", ctx, int64(5)).Return(tiers, nil)

		_, _, err := svc.AddQuoteItem(ctx, 1, AddQuoteItemInput{
			EquipmentID:      5,
			Quantity:         1,
			RentalPeriodDays: 40,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrNoPricingTier)

		var nte *pricing.NoTierError
		require.ErrorAs(t, err, &nte)
		assert.Equal(t, "Generator 20kVA", nte.EquipmentName)
		assert.Equal(t, 40, nte.Days)

		quoteRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("MaintenanceLaborDefaultsFromServiceCosts", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		equipmentRepo := new(MockEquipmentRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, schemaRepo, nil)

		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		schemaRepo.On("GetByID", ctx, int64(2)).Return(schema, nil)
		equipmentRepo.On("GetByID", ctx, int64(5)).Return(generator, nil)
		equipmentRepo.On("GetTiers", ctx, int64(5)).Return(tiers, nil)
		equipmentRepo.On("GetServiceCosts", ctx, int64(5)).Return(&domain.EquipmentServiceCosts{
			EquipmentID:       5,
			WorkerHours:       dec("4"),
			WorkerCostPerHour: dec("150"),
		}, nil)
		quoteRepo.On("CreateItem", ctx, mock.AnythingOfType("*domain.QuoteItem")).Return(nil)

		item, breakdown, err := svc.AddQuoteItem(ctx, 1, AddQuoteItemInput{
			EquipmentID:            5,
			Quantity:               1,
			RentalPeriodDays:       10,
			IncludeMaintenanceCost: true,
			Maintenance: pricing.MaintenanceParams{
				OilCost: dec("200"),
			},
		})
		require.NoError(t, err)

		// 200 oil + 4h * 150 zl/h labor from the equipment configuration.
		assert.True(t, breakdown.Maintenance.Equal(dec("800.00")), "maintenance = %s", breakdown.Maintenance)
		assert.True(t, item.ServiceWorkHours.Equal(dec("4")))
		assert.True(t, item.ServiceWorkRatePerHour.Equal(dec("150")))
	})

	t.Run("SelectedAdditionalAndAccessories", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		equipmentRepo := new(MockEquipmentRepo)
		schemaRepo := new(MockSchemaRepo)
		svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, schemaRepo, nil)

		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		schemaRepo.On("GetByID", ctx, int64(2)).Return(schema, nil)
		equipmentRepo.On("GetByID", ctx, int64(5)).Return(generator, nil)
		equipmentRepo.On("GetTiers", ctx, int64(5)).Return(tiers, nil)
		equipmentRepo.On("GetAdditionalByIDs", ctx, int64(5), []int64{11, 12}).Return([]domain.EquipmentAdditional{
			{ID: 11, Type: domain.AdditionalTypeAdditional, Price: dec("50")},
			{ID: 12, Type: domain.AdditionalTypeAdditional, Price: dec("30")},
		}, nil)
		equipmentRepo.On("GetAdditionalByIDs", ctx, int64(5), []int64{21}).Return([]domain.EquipmentAdditional{
			{ID: 21, Type: domain.AdditionalTypeAccessories, Price: dec("25")},
		}, nil)
		quoteRepo.On("CreateItem", ctx, mock.AnythingOfType("*domain.QuoteItem")).Return(nil)

		item, breakdown, err := svc.AddQuoteItem(ctx, 1, AddQuoteItemInput{
			EquipmentID:           5,
			Quantity:              2,
			RentalPeriodDays:      10,
			SelectedAdditionalIDs: []int64{11, 12},
			SelectedAccessoryIDs:  []int64{21},
		})
		require.NoError(t, err)

		// (50 + 30) * qty 2 and 25 * qty 2; base 90 * 2 * 10 = 1800.
		assert.True(t, breakdown.Additional.Equal(dec("160.00")), "additional = %s", breakdown.Additional)
		assert.True(t, breakdown.Accessories.Equal(dec("50.00")), "accessories = %s", breakdown.Accessories)
		assert.True(t, item.TotalPrice.Equal(dec("2010.00")), "total = %s", item.TotalPrice)
		assert.Equal(t, []int64{11, 12}, item.SelectedAdditionalIDs)
		assert.Equal(t, []int64{21}, item.SelectedAccessoryIDs)
	})
}

func TestQuoteService_SubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("SumsStoredItemTotals", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		equipmentRepo := new(MockEquipmentRepo)
		emailSvc := new(MockEmailService)
		svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, new(MockSchemaRepo), emailSvc)

		quote := &domain.Quote{ID: 1, QuoteNumber: "Q-1A2B3C4D", Status: domain.QuoteStatusDraft, VatRate: dec("23")}
		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		quoteRepo.On("GetItems", ctx, int64(1)).Return([]domain.QuoteItem{
			{ID: 10, TotalPrice: dec("1000.00")},
			{ID: 11, TotalPrice: dec("500.00")},
		}, nil)
		quoteRepo.On("UpdateTotals", ctx, quote).Return(nil)
		quoteRepo.On("UpdateStatus", ctx, int64(1), domain.QuoteStatusPending).Return(nil)
		emailSvc.On("SendQuoteSubmitted", ctx, quote).Return(nil)

		submitted, err := svc.SubmitQuote(ctx, 1)
		require.NoError(t, err)
		assert.True(t, submitted.TotalNet.Equal(dec("1500.00")), "net = %s", submitted.TotalNet)
		assert.True(t, submitted.TotalGross.Equal(dec("1845.00")), "gross = %s", submitted.TotalGross)
		assert.Equal(t, domain.QuoteStatusPending, submitted.Status)

		// Totals come from the persisted snapshots; live equipment pricing
		// is never consulted at submission time.
		equipmentRepo.AssertNotCalled(t, "GetTiers", mock.Anything, mock.Anything)
		equipmentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		emailSvc.AssertExpectations(t)
	})

	t.Run("NoItems", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), nil)

		quote := &domain.Quote{ID: 1, QuoteNumber: "Q-1A2B3C4D", VatRate: dec("23")}
		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		quoteRepo.On("GetItems", ctx, int64(1)).Return([]domain.QuoteItem{}, nil)

		_, err := svc.SubmitQuote(ctx, 1)
		assert.ErrorContains(t, err, "no items")
		quoteRepo.AssertNotCalled(t, "UpdateTotals", mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureDoesNotBlock", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		emailSvc := new(MockEmailService)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), emailSvc)

		quote := &domain.Quote{ID: 1, QuoteNumber: "Q-1A2B3C4D", VatRate: dec("23")}
		quoteRepo.On("GetByID", ctx, int64(1)).Return(quote, nil)
		quoteRepo.On("GetItems", ctx, int64(1)).Return([]domain.QuoteItem{{TotalPrice: dec("100.00")}}, nil)
		quoteRepo.On("UpdateTotals", ctx, quote).Return(nil)
		quoteRepo.On("UpdateStatus", ctx, int64(1), domain.QuoteStatusPending).Return(nil)
		emailSvc.On("SendQuoteSubmitted", ctx, quote).Return(errors.New("sendgrid unavailable"))

		submitted, err := svc.SubmitQuote(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusPending, submitted.Status)
	})
}

func TestQuoteService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownStatus", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), nil)

		err := svc.UpdateStatus(ctx, 1, domain.QuoteStatus("archived"))
		assert.ErrorContains(t, err, "unknown quote status")
		quoteRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), nil)

		quoteRepo.On("GetByID", ctx, int64(1)).Return(&domain.Quote{ID: 1}, nil)
		quoteRepo.On("UpdateStatus", ctx, int64(1), domain.QuoteStatusApproved).Return(nil)

		err := svc.UpdateStatus(ctx, 1, domain.QuoteStatusApproved)
		assert.NoError(t, err)
	})
}

func TestQuoteService_RemoveQuoteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("ItemBelongsToQuote", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), nil)

		quoteRepo.On("GetItems", ctx, int64(1)).Return([]domain.QuoteItem{{ID: 10, QuoteID: 1}}, nil)
		quoteRepo.On("DeleteItem", ctx, int64(10)).Return(nil)

		assert.NoError(t, svc.RemoveQuoteItem(ctx, 1, 10))
	})

	t.Run("ItemFromAnotherQuote", func(t *testing.T) {
		quoteRepo := new(MockQuoteRepo)
		svc := newQuoteServiceForTest(quoteRepo, new(MockEquipmentRepo), new(MockSchemaRepo), nil)

		quoteRepo.On("GetItems", ctx, int64(1)).Return([]domain.QuoteItem{{ID: 10, QuoteID: 1}}, nil)

		err := svc.RemoveQuoteItem(ctx, 1, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		quoteRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}

func TestQuoteService_PreviewLineItem(t *testing.T) {
	ctx := context.Background()

	quoteRepo := new(MockQuoteRepo)
	equipmentRepo := new(MockEquipmentRepo)
	schemaRepo := new(MockSchemaRepo)
	svc := newQuoteServiceForTest(quoteRepo, equipmentRepo, schemaRepo, nil)

	schemaRepo.On("GetDefault", ctx).Return(&domain.PricingSchema{ID: 1, CalculationMethod: domain.CalculationMethodProgressive}, nil)
	equipmentRepo.On("GetByID", ctx, int64(5)).Return(&domain.Equipment{ID: 5, Name: "Heater"}, nil)
	equipmentRepo.On("GetTiers", ctx, int64(5)).Return([]domain.PricingTier{
		{PeriodStart: 1, PricePerDay: dec("80"), DiscountPercent: dec("0")},
	}, nil)

	breakdown, err := svc.PreviewLineItem(ctx, 0, AddQuoteItemInput{
		EquipmentID:      5,
		Quantity:         3,
		RentalPeriodDays: 5,
	})
	require.NoError(t, err)
	assert.True(t, breakdown.Total.Equal(dec("1200.00")), "total = %s", breakdown.Total)

	// Preview never writes.
	quoteRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}
