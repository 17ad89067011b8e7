package jobs

import (
	"context"

	"rentquote-backend/internal/logger"
)

// SyncServiceLaborCosts recomputes the derived service-labor item for every
// equipment that has service cost configuration. Keeping this a scheduled
// sweep (rather than a read-time side effect) means catalog reads stay pure
// and stale labor items converge within one cycle.
func (jr *JobRunner) SyncServiceLaborCosts() {
	jr.runWithRecovery("SyncServiceLaborCosts", func() {
		ctx := context.Background()

		synced, err := jr.services.Maintenance.SyncAll(ctx)
		if err != nil {
			logger.Error("Failed to sync service labor costs", "error", err)
			return
		}

		logger.Info("Service labor costs synced", "equipment_count", synced)
	})
}
