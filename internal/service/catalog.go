package service

import (
	"context"
	"fmt"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/filter"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository"
)

type catalogService struct {
	vehicles  []domain.Vehicle
	byID      map[int32]int
	options   domain.FilterOptions
	projector *filter.Projector
}

// NewCatalogService loads the catalog once and derives the filter options.
// The catalog is static for the life of the process.
func NewCatalogService(ctx context.Context, vehicleRepo repository.VehicleRepository, projectorCap int) (CatalogService, error) {
	logger.EnterMethod("catalogService.Load")

	vehicles, err := vehicleRepo.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("catalogService.Load", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	byID := make(map[int32]int, len(vehicles))
	for i, v := range vehicles {
		if err := v.Validate(); err != nil {
			logger.ExitMethodWithError("catalogService.Load", err)
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, dup := byID[v.ID]; dup {
			err := fmt.Errorf("invalid catalog: duplicate vehicle id %d", v.ID)
			logger.ExitMethodWithError("catalogService.Load", err)
			return nil, err
		}
		byID[v.ID] = i
	}

	s := &catalogService{
		vehicles:  vehicles,
		byID:      byID,
		options:   filter.DeriveOptions(vehicles),
		projector: filter.NewProjector(vehicles, projectorCap),
	}

	logger.ExitMethod("catalogService.Load", "vehicles", len(vehicles),
		"priceMin", s.options.PriceBounds.Min, "priceMax", s.options.PriceBounds.Max)
	return s, nil
}

func (s *catalogService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *catalogService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	v := s.vehicles[i]
	return &v, nil
}

func (s *catalogService) Options(ctx context.Context) (domain.FilterOptions, error) {
	return s.options, nil
}

func (s *catalogService) DefaultState(ctx context.Context) domain.FilterState {
	return filter.DefaultState(s.options)
}

func (s *catalogService) Search(ctx context.Context, state domain.FilterState) ([]domain.Vehicle, error) {
	return s.projector.Visible(state), nil
}
