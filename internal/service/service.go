package service

import (
	"context"
	"errors"
	"time"

	"moto-rentals-backend/internal/domain"
)

var ErrInvalidSection = errors.New("invalid panel section")

type CatalogService interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	Options(ctx context.Context) (domain.FilterOptions, error)
	DefaultState(ctx context.Context) domain.FilterState
	Search(ctx context.Context, state domain.FilterState) ([]domain.Vehicle, error)
}

// SessionService is the state-owning controller for the vehicles page. Every
// action returns the refreshed view.
type SessionService interface {
	Start(ctx context.Context, rawURL string) (*SessionView, error)
	Get(ctx context.Context, id string) (*SessionView, error)
	End(ctx context.Context, id string) error

	SetField(ctx context.Context, id string, key domain.FilterKey, value any) (*SessionView, error)
	ToggleArrayMember(ctx context.Context, id string, key domain.FilterKey, value string) (*SessionView, error)
	Reset(ctx context.Context, id string) (*SessionView, error)
	SelectVehicle(ctx context.Context, id string, vehicleID *int32) (*SessionView, error)

	ToggleFiltersCollapsed(ctx context.Context, id string) (*SessionView, error)
	ToggleNavCollapsed(ctx context.Context, id string) (*SessionView, error)
	ToggleSection(ctx context.Context, id string, section domain.SectionID) (*SessionView, error)
	SetMobileFiltersOpen(ctx context.Context, id string, open bool, currentURL string) (*SessionView, error)

	EvictIdle(ctx context.Context, idleFor time.Duration) (int, error)
}

type ContentService interface {
	ListPages(ctx context.Context) ([]domain.ContentPage, error)
	GetPage(ctx context.Context, slug string) (*domain.ContentPage, error)
	Navigation(ctx context.Context, path string) (*domain.Navigation, error)
	Home(ctx context.Context) (*domain.Home, error)
}

// SessionView is the read-only projection a view layer renders.
type SessionView struct {
	ID              string               `json:"id"`
	Filters         domain.FilterState   `json:"filters"`
	Options         domain.FilterOptions `json:"options"`
	Panel           domain.PanelState    `json:"panel"`
	VisibleVehicles []domain.Vehicle     `json:"visible_vehicles"`
	SelectedVehicle *domain.Vehicle      `json:"selected_vehicle"`
	// ReplaceURL is set when the client should rewrite its address bar.
	ReplaceURL string `json:"replace_url,omitempty"`
}
