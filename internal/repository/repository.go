package repository

import (
	"context"
	"time"

	"moto-rentals-backend/internal/domain"
)

// VehicleRepository is the read-only catalog source. The catalog is loaded
// once at startup.
type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type ContentRepository interface {
	ListPages(ctx context.Context) ([]domain.ContentPage, error)
	GetPage(ctx context.Context, slug string) (*domain.ContentPage, error)
	GetNavigation(ctx context.Context) (*domain.Navigation, error)
	GetHome(ctx context.Context) (*domain.Home, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update applies fn to the stored session atomically. If fn returns an
	// error the stored session is left unchanged.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
