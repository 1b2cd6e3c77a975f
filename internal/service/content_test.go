package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/service"
)

func testNavigation() *domain.Navigation {
	return &domain.Navigation{
		Primary: []domain.NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Vehicles", Href: "/vehicles"},
			{Label: "Chat", Href: "/chat"},
		},
		Secondary: []domain.NavItem{{Label: "Support", Href: "/support"}},
		Mobile: []domain.NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Filter", Href: "/vehicles?filters=1"},
			{Label: "Chat", Href: "/chat"},
		},
	}
}

func TestContentService_Navigation(t *testing.T) {
	ctx := context.Background()

	t.Run("VehiclesShowsFilters", func(t *testing.T) {
		repo := new(MockContentRepo)
		repo.On("GetNavigation", ctx).Return(testNavigation(), nil)
		svc := service.NewContentService(repo)

		nav, err := svc.Navigation(ctx, "/vehicles/?filters=1")
		require.NoError(t, err)
		assert.True(t, nav.ShowFilters)
		assert.False(t, nav.Primary[0].Active)
		assert.True(t, nav.Primary[1].Active)
		assert.True(t, nav.Mobile[1].Active)
		assert.False(t, nav.Mobile[0].Active)
		assert.True(t, nav.ShowMobileNav)
	})

	t.Run("MobileNavHiddenOnHome", func(t *testing.T) {
		repo := new(MockContentRepo)
		repo.On("GetNavigation", ctx).Return(testNavigation(), nil)
		svc := service.NewContentService(repo)

		out, err := svc.Navigation(ctx, "/")
		require.NoError(t, err)
		assert.False(t, out.ShowMobileNav)
		assert.False(t, out.ShowFilters)
	})

	t.Run("MobileNavVisibleOnChat", func(t *testing.T) {
		repo := new(MockContentRepo)
		repo.On("GetNavigation", ctx).Return(testNavigation(), nil)
		svc := service.NewContentService(repo)

		out, err := svc.Navigation(ctx, "/chat")
		require.NoError(t, err)
		assert.True(t, out.ShowMobileNav)
		assert.True(t, out.Mobile[2].Active)
		assert.False(t, out.Mobile[1].Active)
	})

	t.Run("FilterItemOpensDrawer", func(t *testing.T) {
		repo := new(MockContentRepo)
		repo.On("GetNavigation", ctx).Return(testNavigation(), nil)
		svc := service.NewContentService(repo)

		out, err := svc.Navigation(ctx, "/notes")
		require.NoError(t, err)
		assert.False(t, out.ShowMobileNav)
		assert.Equal(t, "/vehicles?filters=1", out.Mobile[1].Href)
	})

	t.Run("OtherPage", func(t *testing.T) {
		repo := new(MockContentRepo)
		nav := testNavigation()
		repo.On("GetNavigation", ctx).Return(nav, nil)
		svc := service.NewContentService(repo)

		out, err := svc.Navigation(ctx, "/support")
		require.NoError(t, err)
		assert.False(t, out.ShowFilters)
		assert.True(t, out.Secondary[0].Active)
		assert.False(t, out.Primary[1].Active)
		// repository data is not mutated
		assert.False(t, nav.Secondary[0].Active)
	})

	t.Run("EmptyPathIsHome", func(t *testing.T) {
		repo := new(MockContentRepo)
		repo.On("GetNavigation", ctx).Return(testNavigation(), nil)
		svc := service.NewContentService(repo)

		out, err := svc.Navigation(ctx, "")
		require.NoError(t, err)
		assert.True(t, out.Primary[0].Active)
	})
}

func TestContentService_GetPage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContentRepo)
	repo.On("GetPage", ctx, "chat").Return(&domain.ContentPage{Slug: "chat", Title: "Chat"}, nil)
	repo.On("GetPage", ctx, "nope").Return(nil, domain.ErrNotFound)
	svc := service.NewContentService(repo)

	page, err := svc.GetPage(ctx, "chat")
	require.NoError(t, err)
	assert.Equal(t, "Chat", page.Title)

	_, err = svc.GetPage(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
