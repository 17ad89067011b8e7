package service

import (
	"context"
	"fmt"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/repository"
)

type schemaService struct {
	schemaRepo repository.PricingSchemaRepository
}

func NewSchemaService(schemaRepo repository.PricingSchemaRepository) SchemaService {
	return &schemaService{schemaRepo: schemaRepo}
}

func validCalculationMethod(m domain.CalculationMethod) bool {
	return m == domain.CalculationMethodFirstDay || m == domain.CalculationMethodProgressive
}

func (s *schemaService) CreateSchema(ctx context.Context, schema *domain.PricingSchema) error {
	if schema.Name == "" {
		return fmt.Errorf("schema name is required")
	}
	if !validCalculationMethod(schema.CalculationMethod) {
		return fmt.Errorf("unknown calculation method: %s", schema.CalculationMethod)
	}
	return s.schemaRepo.Create(ctx, schema)
}

func (s *schemaService) ListSchemas(ctx context.Context) ([]domain.PricingSchema, error) {
	return s.schemaRepo.List(ctx)
}

// UpdateSchema changes a schema's name, description or default flag. The
// calculation method is immutable once created; quotes reference schemas by
// ID and their stored totals must keep their meaning.
func (s *schemaService) UpdateSchema(ctx context.Context, schema *domain.PricingSchema) error {
	if schema.Name == "" {
		return fmt.Errorf("schema name is required")
	}
	return s.schemaRepo.Update(ctx, schema)
}
