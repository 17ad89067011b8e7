package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentquote-backend/internal/service"
)

// NewRouter wires all API routes.
func NewRouter(
	quotes service.QuoteService,
	catalog service.CatalogService,
	schemas service.SchemaService,
	maintenance service.MaintenanceService,
) *mux.Router {
	quoteHandler := NewQuoteHandler(quotes)
	catalogHandler := NewCatalogHandler(catalog, schemas)
	adminHandler := NewAdminHandler(maintenance)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Quotes
	api.HandleFunc("/quotes", quoteHandler.CreateQuote).Methods("POST")
	api.HandleFunc("/quotes", quoteHandler.ListQuotes).Methods("GET")
	api.HandleFunc("/quotes/{id}", quoteHandler.GetQuote).Methods("GET")
	api.HandleFunc("/quotes/{id}", quoteHandler.DeleteQuote).Methods("DELETE")
	api.HandleFunc("/quotes/{id}/items", quoteHandler.AddItem).Methods("POST")
	api.HandleFunc("/quotes/{id}/items/{itemID}", quoteHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/quotes/{id}/submit", quoteHandler.SubmitQuote).Methods("POST")
	api.HandleFunc("/quotes/{id}/status", quoteHandler.UpdateStatus).Methods("PATCH")

	// Pricing preview
	api.HandleFunc("/pricing/preview", quoteHandler.Preview).Methods("POST")

	// Pricing schemas
	api.HandleFunc("/schemas", catalogHandler.ListSchemas).Methods("GET")
	api.HandleFunc("/schemas", catalogHandler.CreateSchema).Methods("POST")
	api.HandleFunc("/schemas/{id}", catalogHandler.UpdateSchema).Methods("PUT")

	// Equipment catalog
	api.HandleFunc("/equipment", catalogHandler.CreateEquipment).Methods("POST")
	api.HandleFunc("/equipment", catalogHandler.ListEquipment).Methods("GET")
	api.HandleFunc("/equipment/{id}", catalogHandler.GetEquipment).Methods("GET")
	api.HandleFunc("/equipment/{id}", catalogHandler.UpdateEquipment).Methods("PUT")
	api.HandleFunc("/equipment/{id}", catalogHandler.DeleteEquipment).Methods("DELETE")
	api.HandleFunc("/equipment/{id}/tiers/{tierID}", catalogHandler.UpdateTier).Methods("PUT")
	api.HandleFunc("/equipment/{id}/additional", catalogHandler.AddAdditional).Methods("POST")
	api.HandleFunc("/equipment/{id}/additional/{addID}", catalogHandler.RemoveAdditional).Methods("DELETE")
	api.HandleFunc("/equipment/{id}/service-costs", catalogHandler.SetServiceCosts).Methods("PUT")
	api.HandleFunc("/equipment/{id}/service-items", catalogHandler.AddServiceItem).Methods("POST")
	api.HandleFunc("/equipment/{id}/service-items", catalogHandler.GetServiceItems).Methods("GET")

	// Admin maintenance operations
	api.HandleFunc("/admin/service-costs/sync", adminHandler.SyncServiceCosts).Methods("POST")
	api.HandleFunc("/admin/equipment/{id}/service-costs/sync", adminHandler.SyncEquipmentServiceCosts).Methods("POST")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}
