package http

import (
	"net/http"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/service"
)

// CatalogHandler exposes the admin-facing equipment catalog: equipment,
// pricing tiers, additional equipment, accessories and service configuration.
type CatalogHandler struct {
	catalog service.CatalogService
	schemas service.SchemaService
}

func NewCatalogHandler(catalog service.CatalogService, schemas service.SchemaService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, schemas: schemas}
}

func (h *CatalogHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if eq.Name == "" {
		respondError(w, http.StatusBadRequest, "equipment name is required")
		return
	}
	if err := h.catalog.CreateEquipment(r.Context(), &eq); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, eq)
}

func (h *CatalogHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	eq, tiers, err := h.catalog.GetEquipment(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"equipment": eq,
		"tiers":     tiers,
	})
}

func (h *CatalogHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	eq.ID = id
	if err := h.catalog.UpdateEquipment(r.Context(), &eq); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eq)
}

func (h *CatalogHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteEquipment(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	var categoryID int64
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := parseID(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		categoryID = id
	}
	page, pageSize := pagination(r)
	equipment, total, err := h.catalog.ListEquipment(r.Context(), categoryID, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"equipment": equipment,
		"total":     total,
	})
}

func (h *CatalogHandler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	equipmentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tierID, ok := pathID(w, r, "tierID")
	if !ok {
		return
	}
	var tier domain.PricingTier
	if err := decodeJSON(r, &tier); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tier.ID = tierID
	tier.EquipmentID = equipmentID
	if err := h.catalog.UpdateTier(r.Context(), &tier); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tier)
}

func (h *CatalogHandler) AddAdditional(w http.ResponseWriter, r *http.Request) {
	equipmentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var add domain.EquipmentAdditional
	if err := decodeJSON(r, &add); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	add.EquipmentID = equipmentID
	if err := h.catalog.AddAdditional(r.Context(), &add); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, add)
}

func (h *CatalogHandler) RemoveAdditional(w http.ResponseWriter, r *http.Request) {
	addID, ok := pathID(w, r, "addID")
	if !ok {
		return
	}
	if err := h.catalog.RemoveAdditional(r.Context(), addID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) SetServiceCosts(w http.ResponseWriter, r *http.Request) {
	equipmentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var costs domain.EquipmentServiceCosts
	if err := decodeJSON(r, &costs); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	costs.EquipmentID = equipmentID
	if err := h.catalog.SetServiceCosts(r.Context(), &costs); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, costs)
}

func (h *CatalogHandler) AddServiceItem(w http.ResponseWriter, r *http.Request) {
	equipmentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var item domain.EquipmentServiceItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.EquipmentID = equipmentID
	if err := h.catalog.AddServiceItem(r.Context(), &item); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) GetServiceItems(w http.ResponseWriter, r *http.Request) {
	equipmentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := h.catalog.GetServiceItems(r.Context(), equipmentID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	schemas, err := h.schemas.ListSchemas(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, schemas)
}

func (h *CatalogHandler) CreateSchema(w http.ResponseWriter, r *http.Request) {
	var schema domain.PricingSchema
	if err := decodeJSON(r, &schema); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.schemas.CreateSchema(r.Context(), &schema); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, schema)
}

func (h *CatalogHandler) UpdateSchema(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var schema domain.PricingSchema
	if err := decodeJSON(r, &schema); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	schema.ID = id
	if err := h.schemas.UpdateSchema(r.Context(), &schema); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, schema)
}
