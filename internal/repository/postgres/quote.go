package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/repository"
)

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	query := `INSERT INTO quotes (quote_number, schema_id, status, creator_name, creator_email, total_net, vat_rate, total_gross, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, q.QuoteNumber, q.SchemaID, q.Status, q.CreatorName,
		q.CreatorEmail, q.TotalNet, q.VatRate, q.TotalGross, time.Now()).Scan(&q.ID)
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	q := &domain.Quote{}
	query := `SELECT id, quote_number, schema_id, status, COALESCE(creator_name, ''), COALESCE(creator_email, ''), total_net, vat_rate, total_gross, created_on, updated_on
	          FROM quotes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.QuoteNumber, &q.SchemaID, &q.Status,
		&q.CreatorName, &q.CreatorEmail, &q.TotalNet, &q.VatRate, &q.TotalGross, &q.CreatedOn, &q.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quoteRepository) List(ctx context.Context, status string, page, pageSize int) ([]domain.Quote, int, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, quote_number, schema_id, status, COALESCE(creator_name, ''), COALESCE(creator_email, ''), total_net, vat_rate, total_gross, created_on, updated_on
	          FROM quotes WHERE ($1 = '' OR status = $1) ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.QuoteNumber, &q.SchemaID, &q.Status, &q.CreatorName,
			&q.CreatorEmail, &q.TotalNet, &q.VatRate, &q.TotalGross, &q.CreatedOn, &q.UpdatedOn); err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM quotes WHERE ($1 = '' OR status = $1)`, status).Scan(&count); err != nil {
		return nil, 0, err
	}
	return quotes, count, nil
}

func (r *quoteRepository) UpdateTotals(ctx context.Context, q *domain.Quote) error {
	query := `UPDATE quotes SET total_net=$1, vat_rate=$2, total_gross=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, q.TotalNet, q.VatRate, q.TotalGross, time.Now(), q.ID)
	return err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE quotes SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	return err
}

func (r *quoteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	return err
}

var quoteItemColumns = `quote_id, equipment_id, quantity, rental_period_days, price_per_day, discount_percent,
	include_fuel_cost, fuel_calculation_type, fuel_consumption_lh, hours_per_day, kilometers_per_day, fuel_consumption_per_100km, fuel_price_per_liter, total_fuel_cost,
	include_installation_cost, installation_technicians, installation_rate_per_technician, installation_distance_km, installation_travel_rate_per_km, total_installation_cost,
	include_disassembly_cost, disassembly_technicians, disassembly_rate_per_technician, disassembly_distance_km, disassembly_travel_rate_per_km, total_disassembly_cost,
	include_travel_service_cost, travel_service_trips, travel_service_technicians, travel_service_rate_per_technician, travel_service_distance_km, travel_service_travel_rate_per_km, total_travel_service_cost,
	include_maintenance_cost, fuel_filter1_cost, fuel_filter2_cost, oil_filter_cost, air_filter1_cost, air_filter2_cost, engine_filter_cost, oil_cost, service_work_hours, service_work_rate_per_hour, service_travel_distance_km, service_travel_rate_per_km, total_maintenance_cost,
	include_service_items, total_service_items_cost,
	selected_additional_ids, selected_accessory_ids, additional_cost, accessories_cost,
	user_notes, total_price, created_on`

func (r *quoteRepository) CreateItem(ctx context.Context, it *domain.QuoteItem) error {
	query := `INSERT INTO quote_items (` + quoteItemColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6,
	                  $7, $8, $9, $10, $11, $12, $13, $14,
	                  $15, $16, $17, $18, $19, $20,
	                  $21, $22, $23, $24, $25, $26,
	                  $27, $28, $29, $30, $31, $32, $33,
	                  $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44, $45, $46,
	                  $47, $48,
	                  $49, $50, $51, $52,
	                  $53, $54, $55) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		it.QuoteID, it.EquipmentID, it.Quantity, it.RentalPeriodDays, it.PricePerDay, it.DiscountPercent,
		it.IncludeFuelCost, it.FuelCalculationType, it.FuelConsumptionLH, it.HoursPerDay, it.KilometersPerDay, it.FuelConsumptionPer100Km, it.FuelPricePerLiter, it.TotalFuelCost,
		it.IncludeInstallationCost, it.InstallationTechnicians, it.InstallationRatePerTechnician, it.InstallationDistanceKm, it.InstallationTravelRatePerKm, it.TotalInstallationCost,
		it.IncludeDisassemblyCost, it.DisassemblyTechnicians, it.DisassemblyRatePerTechnician, it.DisassemblyDistanceKm, it.DisassemblyTravelRatePerKm, it.TotalDisassemblyCost,
		it.IncludeTravelServiceCost, it.TravelServiceTrips, it.TravelServiceTechnicians, it.TravelServiceRatePerTechnician, it.TravelServiceDistanceKm, it.TravelServiceTravelRatePerKm, it.TotalTravelServiceCost,
		it.IncludeMaintenanceCost, it.FuelFilter1Cost, it.FuelFilter2Cost, it.OilFilterCost, it.AirFilter1Cost, it.AirFilter2Cost, it.EngineFilterCost, it.OilCost, it.ServiceWorkHours, it.ServiceWorkRatePerHour, it.ServiceTravelDistanceKm, it.ServiceTravelRatePerKm, it.TotalMaintenanceCost,
		it.IncludeServiceItems, it.TotalServiceItemsCost,
		pq.Array(it.SelectedAdditionalIDs), pq.Array(it.SelectedAccessoryIDs), it.AdditionalCost, it.AccessoriesCost,
		it.UserNotes, it.TotalPrice, time.Now()).Scan(&it.ID)
}

func (r *quoteRepository) GetItems(ctx context.Context, quoteID int64) ([]domain.QuoteItem, error) {
	query := `SELECT id, ` + quoteItemColumns + ` FROM quote_items WHERE quote_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.QuoteItem
	for rows.Next() {
		var it domain.QuoteItem
		if err := rows.Scan(&it.ID,
			&it.QuoteID, &it.EquipmentID, &it.Quantity, &it.RentalPeriodDays, &it.PricePerDay, &it.DiscountPercent,
			&it.IncludeFuelCost, &it.FuelCalculationType, &it.FuelConsumptionLH, &it.HoursPerDay, &it.KilometersPerDay, &it.FuelConsumptionPer100Km, &it.FuelPricePerLiter, &it.TotalFuelCost,
			&it.IncludeInstallationCost, &it.InstallationTechnicians, &it.InstallationRatePerTechnician, &it.InstallationDistanceKm, &it.InstallationTravelRatePerKm, &it.TotalInstallationCost,
			&it.IncludeDisassemblyCost, &it.DisassemblyTechnicians, &it.DisassemblyRatePerTechnician, &it.DisassemblyDistanceKm, &it.DisassemblyTravelRatePerKm, &it.TotalDisassemblyCost,
			&it.IncludeTravelServiceCost, &it.TravelServiceTrips, &it.TravelServiceTechnicians, &it.TravelServiceRatePerTechnician, &it.TravelServiceDistanceKm, &it.TravelServiceTravelRatePerKm, &it.TotalTravelServiceCost,
			&it.IncludeMaintenanceCost, &it.FuelFilter1Cost, &it.FuelFilter2Cost, &it.OilFilterCost, &it.AirFilter1Cost, &it.AirFilter2Cost, &it.EngineFilterCost, &it.OilCost, &it.ServiceWorkHours, &it.ServiceWorkRatePerHour, &it.ServiceTravelDistanceKm, &it.ServiceTravelRatePerKm, &it.TotalMaintenanceCost,
			&it.IncludeServiceItems, &it.TotalServiceItemsCost,
			pq.Array(&it.SelectedAdditionalIDs), pq.Array(&it.SelectedAccessoryIDs), &it.AdditionalCost, &it.AccessoriesCost,
			&it.UserNotes, &it.TotalPrice, &it.CreatedOn); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *quoteRepository) DeleteItem(ctx context.Context, itemID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quote_items WHERE id = $1`, itemID)
	return err
}
