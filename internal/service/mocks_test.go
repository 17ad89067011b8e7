package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"rentquote-backend/internal/domain"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, categoryID int64, page, pageSize int) ([]domain.Equipment, int, error) {
	args := m.Called(ctx, categoryID, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Int(1), args.Error(2)
}
func (m *MockEquipmentRepo) CreateTier(ctx context.Context, tier *domain.PricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetTiers(ctx context.Context, equipmentID int64) ([]domain.PricingTier, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingTier), args.Error(1)
}
func (m *MockEquipmentRepo) UpdateTier(ctx context.Context, tier *domain.PricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockEquipmentRepo) DeleteTier(ctx context.Context, tierID int64) error {
	args := m.Called(ctx, tierID)
	return args.Error(0)
}
func (m *MockEquipmentRepo) CreateAdditional(ctx context.Context, add *domain.EquipmentAdditional) error {
	args := m.Called(ctx, add)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) ([]domain.EquipmentAdditional, error) {
	args := m.Called(ctx, equipmentID, addType)
	return args.Get(0).([]domain.EquipmentAdditional), args.Error(1)
}
func (m *MockEquipmentRepo) GetAdditionalByIDs(ctx context.Context, equipmentID int64, ids []int64) ([]domain.EquipmentAdditional, error) {
	args := m.Called(ctx, equipmentID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentAdditional), args.Error(1)
}
func (m *MockEquipmentRepo) CountActiveAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) (int, error) {
	args := m.Called(ctx, equipmentID, addType)
	return args.Int(0), args.Error(1)
}
func (m *MockEquipmentRepo) DeleteAdditional(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetServiceCosts(ctx context.Context, equipmentID int64) (*domain.EquipmentServiceCosts, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentServiceCosts), args.Error(1)
}
func (m *MockEquipmentRepo) UpsertServiceCosts(ctx context.Context, costs *domain.EquipmentServiceCosts) error {
	args := m.Called(ctx, costs)
	return args.Error(0)
}
func (m *MockEquipmentRepo) ListEquipmentIDsWithServiceCosts(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockEquipmentRepo) CreateServiceItem(ctx context.Context, item *domain.EquipmentServiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetServiceItems(ctx context.Context, equipmentID int64) ([]domain.EquipmentServiceItem, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentServiceItem), args.Error(1)
}
func (m *MockEquipmentRepo) UpsertServiceItemCost(ctx context.Context, equipmentID int64, itemName string, cost decimal.Decimal) error {
	args := m.Called(ctx, equipmentID, itemName, cost)
	return args.Error(0)
}
func (m *MockEquipmentRepo) DeleteServiceItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSchemaRepo
type MockSchemaRepo struct {
	mock.Mock
}

func (m *MockSchemaRepo) Create(ctx context.Context, schema *domain.PricingSchema) error {
	args := m.Called(ctx, schema)
	return args.Error(0)
}
func (m *MockSchemaRepo) GetByID(ctx context.Context, id int64) (*domain.PricingSchema, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingSchema), args.Error(1)
}
func (m *MockSchemaRepo) GetDefault(ctx context.Context) (*domain.PricingSchema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingSchema), args.Error(1)
}
func (m *MockSchemaRepo) List(ctx context.Context) ([]domain.PricingSchema, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PricingSchema), args.Error(1)
}
func (m *MockSchemaRepo) Update(ctx context.Context, schema *domain.PricingSchema) error {
	args := m.Called(ctx, schema)
	return args.Error(0)
}

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) List(ctx context.Context, status string, page, pageSize int) ([]domain.Quote, int, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Int(1), args.Error(2)
}
func (m *MockQuoteRepo) UpdateTotals(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
func (m *MockQuoteRepo) UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockQuoteRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockQuoteRepo) CreateItem(ctx context.Context, item *domain.QuoteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetItems(ctx context.Context, quoteID int64) ([]domain.QuoteItem, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteItem), args.Error(1)
}
func (m *MockQuoteRepo) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuoteSubmitted(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}
