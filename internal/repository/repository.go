package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, categoryID int64, page, pageSize int) ([]domain.Equipment, int, error)

	CreateTier(ctx context.Context, tier *domain.PricingTier) error
	GetTiers(ctx context.Context, equipmentID int64) ([]domain.PricingTier, error)
	UpdateTier(ctx context.Context, tier *domain.PricingTier) error
	DeleteTier(ctx context.Context, tierID int64) error

	CreateAdditional(ctx context.Context, add *domain.EquipmentAdditional) error
	GetAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) ([]domain.EquipmentAdditional, error)
	GetAdditionalByIDs(ctx context.Context, equipmentID int64, ids []int64) ([]domain.EquipmentAdditional, error)
	CountActiveAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) (int, error)
	DeleteAdditional(ctx context.Context, id int64) error

	GetServiceCosts(ctx context.Context, equipmentID int64) (*domain.EquipmentServiceCosts, error)
	UpsertServiceCosts(ctx context.Context, costs *domain.EquipmentServiceCosts) error
	ListEquipmentIDsWithServiceCosts(ctx context.Context) ([]int64, error)

	CreateServiceItem(ctx context.Context, item *domain.EquipmentServiceItem) error
	GetServiceItems(ctx context.Context, equipmentID int64) ([]domain.EquipmentServiceItem, error)
	UpsertServiceItemCost(ctx context.Context, equipmentID int64, itemName string, cost decimal.Decimal) error
	DeleteServiceItem(ctx context.Context, id int64) error
}

type PricingSchemaRepository interface {
	Create(ctx context.Context, schema *domain.PricingSchema) error
	GetByID(ctx context.Context, id int64) (*domain.PricingSchema, error)
	GetDefault(ctx context.Context) (*domain.PricingSchema, error)
	List(ctx context.Context) ([]domain.PricingSchema, error)
	Update(ctx context.Context, schema *domain.PricingSchema) error
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	List(ctx context.Context, status string, page, pageSize int) ([]domain.Quote, int, error)
	UpdateTotals(ctx context.Context, quote *domain.Quote) error
	UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error
	Delete(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *domain.QuoteItem) error
	GetItems(ctx context.Context, quoteID int64) ([]domain.QuoteItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
}
