package service

import (
	"context"
	"slices"
	"strings"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/repository"
)

// VehiclesPath is the route whose page shows the filter panel.
const VehiclesPath = "/vehicles"

// mobileNavPaths are the routes that render the mobile bottom bar.
var mobileNavPaths = []string{VehiclesPath, "/favourites", "/recents", "/chat"}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) ListPages(ctx context.Context) ([]domain.ContentPage, error) {
	return s.contentRepo.ListPages(ctx)
}

func (s *contentService) GetPage(ctx context.Context, slug string) (*domain.ContentPage, error) {
	return s.contentRepo.GetPage(ctx, slug)
}

// Navigation returns the menus with the item for path marked active. Items
// are compared by path, so a link carrying a query such as the filter drawer
// flag is active on its route.
func (s *contentService) Navigation(ctx context.Context, path string) (*domain.Navigation, error) {
	nav, err := s.contentRepo.GetNavigation(ctx)
	if err != nil {
		return nil, err
	}

	path = normalizePath(path)
	out := &domain.Navigation{
		Primary:       markActive(nav.Primary, path),
		Secondary:     markActive(nav.Secondary, path),
		Mobile:        markActive(nav.Mobile, path),
		ShowFilters:   path == VehiclesPath,
		ShowMobileNav: slices.Contains(mobileNavPaths, path),
	}
	return out, nil
}

func (s *contentService) Home(ctx context.Context) (*domain.Home, error) {
	return s.contentRepo.GetHome(ctx)
}

func markActive(items []domain.NavItem, path string) []domain.NavItem {
	out := make([]domain.NavItem, len(items))
	for i, item := range items {
		item.Active = normalizePath(item.Href) == path
		out[i] = item
	}
	return out
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}
