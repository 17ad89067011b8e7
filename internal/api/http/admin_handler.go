package http

import (
	"net/http"

	"rentquote-backend/internal/service"
)

// AdminHandler exposes explicit maintenance operations.
type AdminHandler struct {
	maintenance service.MaintenanceService
}

func NewAdminHandler(maintenance service.MaintenanceService) *AdminHandler {
	return &AdminHandler{maintenance: maintenance}
}

// SyncServiceCosts recomputes the derived service-labor item for all
// equipment. The same work runs nightly from the scheduler; this endpoint
// exists for an admin who just edited service costs and wants the catalog
// consistent now.
func (h *AdminHandler) SyncServiceCosts(w http.ResponseWriter, r *http.Request) {
	synced, err := h.maintenance.SyncAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"synced_equipment": synced})
}

// SyncEquipmentServiceCosts recomputes the derived service-labor item for a
// single equipment.
func (h *AdminHandler) SyncEquipmentServiceCosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.maintenance.SyncServiceWorkHours(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
