package service

import (
	"context"
	"errors"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/logger"
	"rentquote-backend/internal/repository"
)

type maintenanceService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewMaintenanceService(equipmentRepo repository.EquipmentRepository) MaintenanceService {
	return &maintenanceService{equipmentRepo: equipmentRepo}
}

// SyncServiceWorkHours recomputes the derived service-labor item from the
// equipment's worker hours and hourly rate. Equipment without service cost
// configuration is skipped. This is an explicit maintenance operation, never
// a side effect of reading service items.
func (s *maintenanceService) SyncServiceWorkHours(ctx context.Context, equipmentID int64) error {
	costs, err := s.equipmentRepo.GetServiceCosts(ctx, equipmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	laborCost := costs.WorkerHours.Mul(costs.WorkerCostPerHour).Round(2)
	return s.equipmentRepo.UpsertServiceItemCost(ctx, equipmentID, domain.ServiceLaborItemName, laborCost)
}

// SyncAll runs the labor-cost sync for every equipment with service cost
// configuration. Individual failures are logged and do not stop the sweep;
// the count of synced equipment is returned.
func (s *maintenanceService) SyncAll(ctx context.Context) (int, error) {
	ids, err := s.equipmentRepo.ListEquipmentIDsWithServiceCosts(ctx)
	if err != nil {
		return 0, err
	}
	synced := 0
	for _, id := range ids {
		if err := s.SyncServiceWorkHours(ctx, id); err != nil {
			logger.Error("Failed to sync service labor cost", "equipment_id", id, "error", err)
			continue
		}
		synced++
	}
	return synced, nil
}
