package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (category_id, name, model, description, fuel_consumption_lh, fuel_consumption_per_100km, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, eq.CategoryID, eq.Name, eq.Model, eq.Description,
		eq.FuelConsumptionLH, eq.FuelConsumptionPer100Km, eq.Active, time.Now()).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, category_id, name, COALESCE(model, ''), COALESCE(description, ''), fuel_consumption_lh, fuel_consumption_per_100km, active, created_on
	          FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&eq.ID, &eq.CategoryID, &eq.Name, &eq.Model,
		&eq.Description, &eq.FuelConsumptionLH, &eq.FuelConsumptionPer100Km, &eq.Active, &eq.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET category_id=$1, name=$2, model=$3, description=$4, fuel_consumption_lh=$5, fuel_consumption_per_100km=$6, active=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, eq.CategoryID, eq.Name, eq.Model, eq.Description,
		eq.FuelConsumptionLH, eq.FuelConsumptionPer100Km, eq.Active, eq.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE equipment SET active = false WHERE id = $1`, id)
	return err
}

func (r *equipmentRepository) List(ctx context.Context, categoryID int64, page, pageSize int) ([]domain.Equipment, int, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, category_id, name, COALESCE(model, ''), COALESCE(description, ''), fuel_consumption_lh, fuel_consumption_per_100km, active, created_on
	          FROM equipment WHERE active AND ($1 = 0 OR category_id = $1) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, categoryID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.CategoryID, &eq.Name, &eq.Model, &eq.Description,
			&eq.FuelConsumptionLH, &eq.FuelConsumptionPer100Km, &eq.Active, &eq.CreatedOn); err != nil {
			return nil, 0, err
		}
		list = append(list, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	countQuery := `SELECT count(*) FROM equipment WHERE active AND ($1 = 0 OR category_id = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, categoryID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func (r *equipmentRepository) CreateTier(ctx context.Context, tier *domain.PricingTier) error {
	query := `INSERT INTO pricing_tiers (equipment_id, period_start, period_end, price_per_day, discount_percent)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, tier.EquipmentID, tier.PeriodStart, tier.PeriodEnd,
		tier.PricePerDay, tier.DiscountPercent).Scan(&tier.ID)
}

func (r *equipmentRepository) GetTiers(ctx context.Context, equipmentID int64) ([]domain.PricingTier, error) {
	query := `SELECT id, equipment_id, period_start, period_end, price_per_day, discount_percent
	          FROM pricing_tiers WHERE equipment_id = $1 ORDER BY period_start`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.PricingTier
	for rows.Next() {
		var t domain.PricingTier
		if err := rows.Scan(&t.ID, &t.EquipmentID, &t.PeriodStart, &t.PeriodEnd, &t.PricePerDay, &t.DiscountPercent); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *equipmentRepository) UpdateTier(ctx context.Context, tier *domain.PricingTier) error {
	query := `UPDATE pricing_tiers SET period_start=$1, period_end=$2, price_per_day=$3, discount_percent=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, tier.PeriodStart, tier.PeriodEnd, tier.PricePerDay, tier.DiscountPercent, tier.ID)
	return err
}

func (r *equipmentRepository) DeleteTier(ctx context.Context, tierID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pricing_tiers WHERE id = $1`, tierID)
	return err
}

func (r *equipmentRepository) CreateAdditional(ctx context.Context, add *domain.EquipmentAdditional) error {
	query := `INSERT INTO equipment_additional (equipment_id, type, name, price, position, active)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, add.EquipmentID, add.Type, add.Name, add.Price, add.Position, add.Active).Scan(&add.ID)
}

func (r *equipmentRepository) GetAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) ([]domain.EquipmentAdditional, error) {
	query := `SELECT id, equipment_id, type, name, price, position, active
	          FROM equipment_additional WHERE equipment_id = $1 AND type = $2 AND active ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, equipmentID, addType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdditional(rows)
}

func (r *equipmentRepository) GetAdditionalByIDs(ctx context.Context, equipmentID int64, ids []int64) ([]domain.EquipmentAdditional, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, equipment_id, type, name, price, position, active
	          FROM equipment_additional WHERE equipment_id = $1 AND id = ANY($2) AND active ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, equipmentID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAdditional(rows)
}

func scanAdditional(rows *sql.Rows) ([]domain.EquipmentAdditional, error) {
	var list []domain.EquipmentAdditional
	for rows.Next() {
		var a domain.EquipmentAdditional
		if err := rows.Scan(&a.ID, &a.EquipmentID, &a.Type, &a.Name, &a.Price, &a.Position, &a.Active); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *equipmentRepository) CountActiveAdditional(ctx context.Context, equipmentID int64, addType domain.AdditionalType) (int, error) {
	var count int
	query := `SELECT count(*) FROM equipment_additional WHERE equipment_id = $1 AND type = $2 AND active`
	err := r.db.QueryRowContext(ctx, query, equipmentID, addType).Scan(&count)
	return count, err
}

func (r *equipmentRepository) DeleteAdditional(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE equipment_additional SET active = false WHERE id = $1`, id)
	return err
}

func (r *equipmentRepository) GetServiceCosts(ctx context.Context, equipmentID int64) (*domain.EquipmentServiceCosts, error) {
	c := &domain.EquipmentServiceCosts{}
	query := `SELECT equipment_id, service_interval_months, service_interval_motohours, service_interval_km, worker_hours, worker_cost_per_hour
	          FROM equipment_service_costs WHERE equipment_id = $1`
	err := r.db.QueryRowContext(ctx, query, equipmentID).Scan(&c.EquipmentID, &c.ServiceIntervalMonths,
		&c.ServiceIntervalMotohours, &c.ServiceIntervalKm, &c.WorkerHours, &c.WorkerCostPerHour)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *equipmentRepository) UpsertServiceCosts(ctx context.Context, costs *domain.EquipmentServiceCosts) error {
	query := `INSERT INTO equipment_service_costs (equipment_id, service_interval_months, service_interval_motohours, service_interval_km, worker_hours, worker_cost_per_hour)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (equipment_id) DO UPDATE SET
	            service_interval_months = EXCLUDED.service_interval_months,
	            service_interval_motohours = EXCLUDED.service_interval_motohours,
	            service_interval_km = EXCLUDED.service_interval_km,
	            worker_hours = EXCLUDED.worker_hours,
	            worker_cost_per_hour = EXCLUDED.worker_cost_per_hour`
	_, err := r.db.ExecContext(ctx, query, costs.EquipmentID, costs.ServiceIntervalMonths,
		costs.ServiceIntervalMotohours, costs.ServiceIntervalKm, costs.WorkerHours, costs.WorkerCostPerHour)
	return err
}

func (r *equipmentRepository) ListEquipmentIDsWithServiceCosts(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT equipment_id FROM equipment_service_costs ORDER BY equipment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *equipmentRepository) CreateServiceItem(ctx context.Context, item *domain.EquipmentServiceItem) error {
	query := `INSERT INTO equipment_service_items (equipment_id, item_name, item_cost, sort_order)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.EquipmentID, item.ItemName, item.ItemCost, item.SortOrder).Scan(&item.ID)
}

func (r *equipmentRepository) GetServiceItems(ctx context.Context, equipmentID int64) ([]domain.EquipmentServiceItem, error) {
	query := `SELECT id, equipment_id, item_name, item_cost, sort_order
	          FROM equipment_service_items WHERE equipment_id = $1 ORDER BY sort_order`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EquipmentServiceItem
	for rows.Next() {
		var it domain.EquipmentServiceItem
		if err := rows.Scan(&it.ID, &it.EquipmentID, &it.ItemName, &it.ItemCost, &it.SortOrder); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) UpsertServiceItemCost(ctx context.Context, equipmentID int64, itemName string, cost decimal.Decimal) error {
	// The derived labor item keeps its sort position when it already exists;
	// a new row goes to the end of the list.
	query := `INSERT INTO equipment_service_items (equipment_id, item_name, item_cost, sort_order)
	          VALUES ($1, $2, $3, COALESCE((SELECT max(sort_order) + 1 FROM equipment_service_items WHERE equipment_id = $1), 1))
	          ON CONFLICT (equipment_id, item_name) DO UPDATE SET item_cost = EXCLUDED.item_cost`
	_, err := r.db.ExecContext(ctx, query, equipmentID, itemName, cost)
	return err
}

func (r *equipmentRepository) DeleteServiceItem(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM equipment_service_items WHERE id = $1`, id)
	return err
}
