package postgres

import (
	"context"
	"database/sql"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository"
)

const vehicleColumns = `id, name, COALESCE(subtitle, ''), brand, model, year, body_type, fuel_type, transmission, rental_type,
	price, COALESCE(rating, 0), COALESCE(reviews, 0), available_now, COALESCE(image, ''), COALESCE(model_3d, ''),
	distance_meters, walk_minutes`

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// List returns the catalog in its stable display order.
func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE retired_on IS NULL ORDER BY display_order, id`
	logger.DatabaseCall("ListVehicles", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListVehicles", 0, err)
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			logger.DatabaseResult("ListVehicles", int64(len(vehicles)), err)
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("ListVehicles", int64(len(vehicles)), err)
		return nil, err
	}

	logger.DatabaseResult("ListVehicles", int64(len(vehicles)), nil)
	return vehicles, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVehicle(s scanner) (*domain.Vehicle, error) {
	var (
		v        domain.Vehicle
		distance sql.NullInt32
		walk     sql.NullInt32
	)
	err := s.Scan(&v.ID, &v.Name, &v.Subtitle, &v.Brand, &v.Model, &v.Year, &v.BodyType, &v.FuelType, &v.Transmission, &v.RentalType,
		&v.Price, &v.Rating, &v.Reviews, &v.AvailableNow, &v.Image, &v.Model3D, &distance, &walk)
	if err != nil {
		return nil, err
	}
	if distance.Valid {
		d := int(distance.Int32)
		v.DistanceMeters = &d
	}
	if walk.Valid {
		w := int(walk.Int32)
		v.WalkMinutes = &w
	}
	return &v, nil
}
