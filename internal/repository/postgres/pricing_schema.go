package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/repository"
)

type pricingSchemaRepository struct {
	db *sql.DB
}

func NewPricingSchemaRepository(db *sql.DB) repository.PricingSchemaRepository {
	return &pricingSchemaRepository{db: db}
}

func (r *pricingSchemaRepository) Create(ctx context.Context, schema *domain.PricingSchema) error {
	query := `INSERT INTO pricing_schemas (name, calculation_method, description, is_default)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, schema.Name, schema.CalculationMethod, schema.Description, schema.IsDefault).Scan(&schema.ID)
}

func (r *pricingSchemaRepository) GetByID(ctx context.Context, id int64) (*domain.PricingSchema, error) {
	return r.getOne(ctx, `SELECT id, name, calculation_method, COALESCE(description, ''), is_default FROM pricing_schemas WHERE id = $1`, id)
}

func (r *pricingSchemaRepository) GetDefault(ctx context.Context) (*domain.PricingSchema, error) {
	return r.getOne(ctx, `SELECT id, name, calculation_method, COALESCE(description, ''), is_default FROM pricing_schemas WHERE is_default LIMIT 1`)
}

func (r *pricingSchemaRepository) getOne(ctx context.Context, query string, args ...any) (*domain.PricingSchema, error) {
	s := &domain.PricingSchema{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.CalculationMethod, &s.Description, &s.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pricingSchemaRepository) List(ctx context.Context) ([]domain.PricingSchema, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, calculation_method, COALESCE(description, ''), is_default FROM pricing_schemas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemas []domain.PricingSchema
	for rows.Next() {
		var s domain.PricingSchema
		if err := rows.Scan(&s.ID, &s.Name, &s.CalculationMethod, &s.Description, &s.IsDefault); err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, rows.Err()
}

func (r *pricingSchemaRepository) Update(ctx context.Context, schema *domain.PricingSchema) error {
	// calculation_method is deliberately not updatable: historical quotes
	// reference schemas by id and their stored totals must keep their meaning.
	query := `UPDATE pricing_schemas SET name=$1, description=$2, is_default=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, schema.Name, schema.Description, schema.IsDefault, schema.ID)
	return err
}
