// Package seed serves the bundled catalog and dashboard content from
// embedded YAML.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/repository"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

//go:embed data/content.yaml
var contentYAML []byte

type catalogFile struct {
	Vehicles []domain.Vehicle `yaml:"vehicles"`
}

type contentFile struct {
	Home       domain.Home          `yaml:"home"`
	Navigation domain.Navigation    `yaml:"navigation"`
	Pages      []domain.ContentPage `yaml:"pages"`
}

type vehicleRepository struct {
	vehicles []domain.Vehicle
}

// NewVehicleRepository parses and validates a YAML catalog.
func NewVehicleRepository(data []byte) (repository.VehicleRepository, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[int32]bool, len(f.Vehicles))
	for _, v := range f.Vehicles {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("invalid catalog: duplicate vehicle id %d", v.ID)
		}
		seen[v.ID] = true
	}
	return &vehicleRepository{vehicles: f.Vehicles}, nil
}

// NewDefaultVehicleRepository returns the embedded catalog.
func NewDefaultVehicleRepository() (repository.VehicleRepository, error) {
	return NewVehicleRepository(catalogYAML)
}

// NewVehicleRepositoryFromFile reads a catalog from disk.
func NewVehicleRepositoryFromFile(path string) (repository.VehicleRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return NewVehicleRepository(data)
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

type contentRepository struct {
	content contentFile
}

// NewContentRepository parses the dashboard pages, navigation and home hero.
func NewContentRepository(data []byte) (repository.ContentRepository, error) {
	var f contentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	seen := make(map[string]bool, len(f.Pages))
	for _, p := range f.Pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("invalid content: page %q has no slug", p.Title)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("invalid content: duplicate page %q", p.Slug)
		}
		seen[p.Slug] = true
	}
	return &contentRepository{content: f}, nil
}

func NewDefaultContentRepository() (repository.ContentRepository, error) {
	return NewContentRepository(contentYAML)
}

func (r *contentRepository) ListPages(ctx context.Context) ([]domain.ContentPage, error) {
	out := make([]domain.ContentPage, len(r.content.Pages))
	copy(out, r.content.Pages)
	return out, nil
}

func (r *contentRepository) GetPage(ctx context.Context, slug string) (*domain.ContentPage, error) {
	for _, p := range r.content.Pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, fmt.Errorf("page %q: %w", slug, domain.ErrNotFound)
}

func (r *contentRepository) GetNavigation(ctx context.Context) (*domain.Navigation, error) {
	nav := domain.Navigation{
		Primary:   append([]domain.NavItem(nil), r.content.Navigation.Primary...),
		Secondary: append([]domain.NavItem(nil), r.content.Navigation.Secondary...),
		Mobile:    append([]domain.NavItem(nil), r.content.Navigation.Mobile...),
	}
	return &nav, nil
}

func (r *contentRepository) GetHome(ctx context.Context) (*domain.Home, error) {
	home := r.content.Home
	return &home, nil
}
