package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/pricing"
	"rentquote-backend/internal/service"
)

// QuoteHandler exposes quote creation, line-item pricing and submission.
type QuoteHandler struct {
	quotes service.QuoteService
}

func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type createQuoteRequest struct {
	SchemaID     int64  `json:"schema_id"`
	CreatorName  string `json:"creator_name"`
	CreatorEmail string `json:"creator_email"`
}

type visitParamsRequest struct {
	Technicians       int             `json:"technicians"`
	RatePerTechnician decimal.Decimal `json:"rate_per_technician"`
	DistanceKm        decimal.Decimal `json:"distance_km"`
	TravelRatePerKm   decimal.Decimal `json:"travel_rate_per_km"`
}

func (v visitParamsRequest) toParams() pricing.VisitParams {
	return pricing.VisitParams{
		Technicians:       v.Technicians,
		RatePerTechnician: v.RatePerTechnician,
		DistanceKm:        v.DistanceKm,
		TravelRatePerKm:   v.TravelRatePerKm,
	}
}

type maintenanceParamsRequest struct {
	FuelFilter1Cost  decimal.Decimal `json:"fuel_filter_1_cost"`
	FuelFilter2Cost  decimal.Decimal `json:"fuel_filter_2_cost"`
	OilFilterCost    decimal.Decimal `json:"oil_filter_cost"`
	AirFilter1Cost   decimal.Decimal `json:"air_filter_1_cost"`
	AirFilter2Cost   decimal.Decimal `json:"air_filter_2_cost"`
	EngineFilterCost decimal.Decimal `json:"engine_filter_cost"`
	OilCost          decimal.Decimal `json:"oil_cost"`
	WorkHours        decimal.Decimal `json:"work_hours"`
	WorkRatePerHour  decimal.Decimal `json:"work_rate_per_hour"`
	TravelDistanceKm decimal.Decimal `json:"travel_distance_km"`
	TravelRatePerKm  decimal.Decimal `json:"travel_rate_per_km"`
}

func (m maintenanceParamsRequest) toParams() pricing.MaintenanceParams {
	return pricing.MaintenanceParams{
		FuelFilter1Cost:  m.FuelFilter1Cost,
		FuelFilter2Cost:  m.FuelFilter2Cost,
		OilFilterCost:    m.OilFilterCost,
		AirFilter1Cost:   m.AirFilter1Cost,
		AirFilter2Cost:   m.AirFilter2Cost,
		EngineFilterCost: m.EngineFilterCost,
		OilCost:          m.OilCost,
		WorkHours:        m.WorkHours,
		WorkRatePerHour:  m.WorkRatePerHour,
		TravelDistanceKm: m.TravelDistanceKm,
		TravelRatePerKm:  m.TravelRatePerKm,
	}
}

type quoteItemRequest struct {
	EquipmentID      int64 `json:"equipment_id"`
	Quantity         int   `json:"quantity"`
	RentalPeriodDays int   `json:"rental_period_days"`

	IncludeFuelCost     bool            `json:"include_fuel_cost"`
	FuelCalculationType string          `json:"fuel_calculation_type"`
	HoursPerDay         decimal.Decimal `json:"hours_per_day"`
	KilometersPerDay    decimal.Decimal `json:"kilometers_per_day"`
	FuelPricePerLiter   decimal.Decimal `json:"fuel_price_per_liter"`

	IncludeInstallationCost bool               `json:"include_installation_cost"`
	Installation            visitParamsRequest `json:"installation"`

	IncludeDisassemblyCost bool               `json:"include_disassembly_cost"`
	Disassembly            visitParamsRequest `json:"disassembly"`

	IncludeTravelServiceCost bool               `json:"include_travel_service_cost"`
	TravelServiceTrips       int                `json:"travel_service_trips"`
	TravelService            visitParamsRequest `json:"travel_service"`

	IncludeMaintenanceCost bool                     `json:"include_maintenance_cost"`
	Maintenance            maintenanceParamsRequest `json:"maintenance"`

	IncludeServiceItems  bool                    `json:"include_service_items"`
	ServiceItemOverrides map[int]decimal.Decimal `json:"service_item_overrides"`

	SelectedAdditionalIDs []int64 `json:"selected_additional_ids"`
	SelectedAccessoryIDs  []int64 `json:"selected_accessory_ids"`
	UserNotes             string  `json:"user_notes"`
}

func (r quoteItemRequest) toInput() service.AddQuoteItemInput {
	return service.AddQuoteItemInput{
		EquipmentID:      r.EquipmentID,
		Quantity:         r.Quantity,
		RentalPeriodDays: r.RentalPeriodDays,

		IncludeFuelCost:     r.IncludeFuelCost,
		FuelCalculationType: pricing.FuelCalculationType(r.FuelCalculationType),
		HoursPerDay:         r.HoursPerDay,
		KilometersPerDay:    r.KilometersPerDay,
		FuelPricePerLiter:   r.FuelPricePerLiter,

		IncludeInstallationCost: r.IncludeInstallationCost,
		Installation:            r.Installation.toParams(),

		IncludeDisassemblyCost: r.IncludeDisassemblyCost,
		Disassembly:            r.Disassembly.toParams(),

		IncludeTravelServiceCost: r.IncludeTravelServiceCost,
		TravelService: pricing.TravelServiceParams{
			Trips: r.TravelServiceTrips,
			Visit: r.TravelService.toParams(),
		},

		IncludeMaintenanceCost: r.IncludeMaintenanceCost,
		Maintenance:            r.Maintenance.toParams(),

		IncludeServiceItems:  r.IncludeServiceItems,
		ServiceItemOverrides: r.ServiceItemOverrides,

		SelectedAdditionalIDs: r.SelectedAdditionalIDs,
		SelectedAccessoryIDs:  r.SelectedAccessoryIDs,
		UserNotes:             r.UserNotes,
	}
}

// breakdownResponse serializes every sub-total with two fraction digits so
// clients never re-round money.
type breakdownResponse struct {
	BaseRental    string `json:"base_rental"`
	Fuel          string `json:"fuel"`
	Installation  string `json:"installation"`
	Disassembly   string `json:"disassembly"`
	TravelService string `json:"travel_service"`
	Maintenance   string `json:"maintenance"`
	ServiceItems  string `json:"service_items"`
	Additional    string `json:"additional"`
	Accessories   string `json:"accessories"`
	Total         string `json:"total"`
}

func toBreakdownResponse(b *pricing.LineItemBreakdown) breakdownResponse {
	return breakdownResponse{
		BaseRental:    b.BaseRental.StringFixed(2),
		Fuel:          b.Fuel.StringFixed(2),
		Installation:  b.Installation.StringFixed(2),
		Disassembly:   b.Disassembly.StringFixed(2),
		TravelService: b.TravelService.StringFixed(2),
		Maintenance:   b.Maintenance.StringFixed(2),
		ServiceItems:  b.ServiceItems.StringFixed(2),
		Additional:    b.Additional.StringFixed(2),
		Accessories:   b.Accessories.StringFixed(2),
		Total:         b.Total.StringFixed(2),
	}
}

type quoteResponse struct {
	ID           int64  `json:"id"`
	QuoteNumber  string `json:"quote_number"`
	SchemaID     int64  `json:"schema_id"`
	Status       string `json:"status"`
	CreatorName  string `json:"creator_name"`
	CreatorEmail string `json:"creator_email"`
	TotalNet     string `json:"total_net"`
	VatRate      string `json:"vat_rate"`
	TotalGross   string `json:"total_gross"`
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		SchemaID:     q.SchemaID,
		Status:       string(q.Status),
		CreatorName:  q.CreatorName,
		CreatorEmail: q.CreatorEmail,
		TotalNet:     q.TotalNet.StringFixed(2),
		VatRate:      q.VatRate.StringFixed(2),
		TotalGross:   q.TotalGross.StringFixed(2),
	}
}

func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	quote, err := h.quotes.CreateQuote(r.Context(), req.SchemaID, req.CreatorName, req.CreatorEmail)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toQuoteResponse(quote))
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	quote, items, err := h.quotes.GetQuote(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"quote": toQuoteResponse(quote),
		"items": items,
	})
}

func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)
	quotes, total, err := h.quotes.ListQuotes(r.Context(), status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]quoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, toQuoteResponse(&quotes[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"quotes": out,
		"total":  total,
	})
}

func (h *QuoteHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req quoteItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, breakdown, err := h.quotes.AddQuoteItem(r.Context(), id, req.toInput())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"item":      item,
		"breakdown": toBreakdownResponse(breakdown),
	})
}

func (h *QuoteHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}
	if err := h.quotes.RemoveQuoteItem(r.Context(), id, itemID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *QuoteHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	quote, err := h.quotes.SubmitQuote(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toQuoteResponse(quote))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status := domain.QuoteStatus(req.Status)
	if !domain.ValidQuoteStatus(status) {
		respondError(w, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}
	if err := h.quotes.UpdateStatus(r.Context(), id, status); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *QuoteHandler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.quotes.DeleteQuote(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type previewRequest struct {
	SchemaID int64            `json:"schema_id"`
	Item     quoteItemRequest `json:"item"`
}

// Preview prices a line item without saving anything. The UI calls this on
// every parameter change to show live sub-totals.
func (h *QuoteHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	breakdown, err := h.quotes.PreviewLineItem(r.Context(), req.SchemaID, req.Item.toInput())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBreakdownResponse(breakdown))
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func pagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
