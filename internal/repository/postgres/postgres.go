package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"rentquote-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.PricingSchemaRepository
	repository.QuoteRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		EquipmentRepository:     NewEquipmentRepository(db),
		PricingSchemaRepository: NewPricingSchemaRepository(db),
		QuoteRepository:         NewQuoteRepository(db),
	}
}
