package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/repository"
)

// defaultTierRanges are the five placeholder duration ranges seeded for new
// equipment: 1-2, 3-7, 8-18, 19-29 and open-ended 30+. The admin is expected
// to edit prices afterwards.
var defaultTierRanges = []struct {
	start int
	end   int // 0 = open ended
}{
	{1, 2},
	{3, 7},
	{8, 18},
	{19, 29},
	{30, 0},
}

type catalogService struct {
	equipmentRepo    repository.EquipmentRepository
	placeholderPrice decimal.Decimal
}

func NewCatalogService(equipmentRepo repository.EquipmentRepository, placeholderPrice decimal.Decimal) CatalogService {
	return &catalogService{
		equipmentRepo:    equipmentRepo,
		placeholderPrice: placeholderPrice,
	}
}

func (s *catalogService) CreateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.Name == "" {
		return fmt.Errorf("equipment name is required")
	}
	eq.Active = true
	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return err
	}
	for _, r := range defaultTierRanges {
		tier := &domain.PricingTier{
			EquipmentID:     eq.ID,
			PeriodStart:     r.start,
			PricePerDay:     s.placeholderPrice,
			DiscountPercent: decimal.Zero,
		}
		if r.end > 0 {
			end := r.end
			tier.PeriodEnd = &end
		}
		if err := s.equipmentRepo.CreateTier(ctx, tier); err != nil {
			return fmt.Errorf("failed to seed pricing tier %d-%d: %w", r.start, r.end, err)
		}
	}
	return nil
}

func (s *catalogService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.PricingTier, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tiers, err := s.equipmentRepo.GetTiers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return eq, tiers, nil
}

func (s *catalogService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *catalogService) DeleteEquipment(ctx context.Context, id int64) error {
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *catalogService) ListEquipment(ctx context.Context, categoryID int64, page, pageSize int) ([]domain.Equipment, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return s.equipmentRepo.List(ctx, categoryID, page, pageSize)
}

func (s *catalogService) UpdateTier(ctx context.Context, tier *domain.PricingTier) error {
	if tier.PeriodStart < 1 {
		return fmt.Errorf("tier period must start at day 1 or later")
	}
	if tier.PeriodEnd != nil && *tier.PeriodEnd < tier.PeriodStart {
		return fmt.Errorf("tier period end %d is before start %d", *tier.PeriodEnd, tier.PeriodStart)
	}
	return s.equipmentRepo.UpdateTier(ctx, tier)
}

func (s *catalogService) AddAdditional(ctx context.Context, add *domain.EquipmentAdditional) error {
	if add.Type != domain.AdditionalTypeAdditional && add.Type != domain.AdditionalTypeAccessories {
		return fmt.Errorf("unknown additional type %q", add.Type)
	}
	count, err := s.equipmentRepo.CountActiveAdditional(ctx, add.EquipmentID, add.Type)
	if err != nil {
		return err
	}
	if count >= domain.MaxAdditionalPerType {
		return fmt.Errorf("equipment %d already has %d active %s entries", add.EquipmentID, count, add.Type)
	}
	add.Active = true
	if add.Position < 1 || add.Position > domain.MaxAdditionalPerType {
		add.Position = count + 1
	}
	return s.equipmentRepo.CreateAdditional(ctx, add)
}

func (s *catalogService) RemoveAdditional(ctx context.Context, id int64) error {
	return s.equipmentRepo.DeleteAdditional(ctx, id)
}

func (s *catalogService) SetServiceCosts(ctx context.Context, costs *domain.EquipmentServiceCosts) error {
	if _, err := s.equipmentRepo.GetByID(ctx, costs.EquipmentID); err != nil {
		return err
	}
	return s.equipmentRepo.UpsertServiceCosts(ctx, costs)
}

func (s *catalogService) AddServiceItem(ctx context.Context, item *domain.EquipmentServiceItem) error {
	return s.equipmentRepo.CreateServiceItem(ctx, item)
}

func (s *catalogService) GetServiceItems(ctx context.Context, equipmentID int64) ([]domain.EquipmentServiceItem, error) {
	// Reading never triggers a labor-cost sync; that is an explicit
	// maintenance operation.
	return s.equipmentRepo.GetServiceItems(ctx, equipmentID)
}
