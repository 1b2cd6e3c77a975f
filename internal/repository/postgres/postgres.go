package postgres

import (
	"database/sql"

	"moto-rentals-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		VehicleRepository: NewVehicleRepository(db),
	}
}
