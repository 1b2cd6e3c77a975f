package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moto-rentals-backend/internal/config"
	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository/memory"
	"moto-rentals-backend/internal/repository/seed"
	"moto-rentals-backend/internal/security"
	"moto-rentals-backend/internal/service"
)

const testSecret = "test-secret-key-with-at-least-32-characters"

func init() {
	logger.Discard()
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithConfig(t, config.HTTPConfig{CORSOrigin: "*"})
}

func newTestRouterWithConfig(t *testing.T, cfg config.HTTPConfig) http.Handler {
	t.Helper()
	ctx := context.Background()

	vehicleRepo, err := seed.NewDefaultVehicleRepository()
	require.NoError(t, err)
	contentRepo, err := seed.NewDefaultContentRepository()
	require.NoError(t, err)

	catalog, err := service.NewCatalogService(ctx, vehicleRepo, 16)
	require.NoError(t, err)

	return NewRouter(Services{
		Catalog:  catalog,
		Sessions: service.NewSessionService(memory.NewSessionRepository(), catalog),
		Content:  service.NewContentService(contentRepo),
		Tokens:   security.NewTokenManager(testSecret, time.Hour),
	}, cfg)
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(SessionTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func startSession(t *testing.T, h http.Handler, url string) SessionResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/v1/sessions", "", map[string]string{"url": url})
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[SessionResponse](t, rec)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, resp.Token, rec.Header().Get(SessionTokenHeader))
	return resp
}

func TestHealthcheck(t *testing.T) {
	h := newTestRouter(t)
	rec := doRequest(t, h, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestVehicles_List(t *testing.T) {
	h := newTestRouter(t)

	t.Run("Unfiltered", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[VehicleList](t, rec)
		assert.Equal(t, 12, list.Count)
		assert.Empty(t, list.Message)
		assert.Equal(t, int32(1), list.Vehicles[0].ID)
		assert.Equal(t, "$19.50", list.Vehicles[0].PriceLabel)
		assert.Equal(t, "/ hour", list.Vehicles[0].PriceUnit)
		assert.Equal(t, domain.DefaultDistanceMeters, list.Vehicles[0].DistanceMeters)
		assert.Equal(t, 300, list.Vehicles[1].DistanceMeters)
	})

	t.Run("Filtered", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles?transmission=Manual&rental_type=day", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[VehicleList](t, rec)
		require.Equal(t, 2, list.Count)
		assert.Equal(t, int32(7), list.Vehicles[0].ID)
		assert.Equal(t, int32(11), list.Vehicles[1].ID)
	})

	t.Run("RepeatedFacet", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles?brand=Mazda&brand=Honda&brand=Mazda", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[VehicleList](t, rec)
		assert.Equal(t, 4, list.Count)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles?brand=Lada", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[VehicleList](t, rec)
		assert.Equal(t, 0, list.Count)
		assert.NotNil(t, list.Vehicles)
		assert.Equal(t, EmptyResultsMessage, list.Message)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles?rental_type=week", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVehicles_GetAndOptions(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/vehicles/4", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[VehicleDetail](t, rec)
	assert.Equal(t, "Audi", detail.Brand)
	assert.Equal(t, "/models/audi-a4.glb", detail.Model3D)
	assert.Equal(t, "Available now", detail.Availability)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/vehicles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/vehicles/options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	opts := decode[domain.FilterOptions](t, rec)
	assert.Equal(t, domain.PriceBounds{Min: 19, Max: 99}, opts.PriceBounds)
	assert.Contains(t, opts.Brands, "Mazda")
}

func TestSession_Lifecycle(t *testing.T) {
	h := newTestRouter(t)
	start := startSession(t, h, "/vehicles?filters=1")
	assert.True(t, start.Panel.MobileFiltersOpen)
	assert.Equal(t, "/vehicles", start.ReplaceURL)
	assert.Equal(t, 12, start.Results.Count)
	token := start.Token

	rec := doRequest(t, h, http.MethodPut, "/api/v1/session/filters/transmission", token, map[string]any{"value": "Manual"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(SessionTokenHeader))
	view := decode[SessionResponse](t, rec)
	assert.Equal(t, 4, view.Results.Count)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/session/filters/brands/toggle", token, map[string]any{"value": "Mazda"})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[SessionResponse](t, rec)
	assert.Equal(t, 2, view.Results.Count)

	rec = doRequest(t, h, http.MethodPut, "/api/v1/session/filters/priceMin", token, map[string]any{"value": 1000})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[SessionResponse](t, rec)
	assert.Equal(t, 98.0, view.Filters.PriceMin)
	assert.Equal(t, 0, view.Results.Count)
	assert.Equal(t, EmptyResultsMessage, view.Results.Message)

	rec = doRequest(t, h, http.MethodPut, "/api/v1/session/filters/colour", token, map[string]any{"value": "red"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/session/filters/reset", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[SessionResponse](t, rec)
	assert.Equal(t, 12, view.Results.Count)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/session", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/session", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSession_StartFromMobileFilterLink(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/navigation?path=/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	nav := decode[domain.Navigation](t, rec)
	assert.False(t, nav.ShowMobileNav)

	var filterHref string
	for _, item := range nav.Mobile {
		if item.Label == "Filter" {
			filterHref = item.Href
		}
	}
	require.NotEmpty(t, filterHref)

	start := startSession(t, h, filterHref)
	assert.True(t, start.Panel.MobileFiltersOpen)
	assert.Equal(t, "/vehicles", start.ReplaceURL)
}

func TestSession_Selection(t *testing.T) {
	h := newTestRouter(t)
	token := startSession(t, h, "/vehicles").Token

	rec := doRequest(t, h, http.MethodPut, "/api/v1/session/selection", token, map[string]any{"vehicle_id": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[SessionResponse](t, rec)
	require.NotNil(t, view.SelectedVehicle)
	assert.Equal(t, "Honda Civic", view.SelectedVehicle.Name)
	assert.Equal(t, "300m (6 min)", view.SelectedVehicle.DistanceLabel)

	rec = doRequest(t, h, http.MethodPut, "/api/v1/session/selection", token, map[string]any{"vehicle_id": 404})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/v1/session/selection", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[SessionResponse](t, rec)
	assert.Nil(t, view.SelectedVehicle)
}

func TestSession_Panel(t *testing.T) {
	h := newTestRouter(t)
	token := startSession(t, h, "/vehicles?filters=1").Token

	rec := doRequest(t, h, http.MethodPost, "/api/v1/session/panel/sections/brand/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[SessionResponse](t, rec)
	assert.Contains(t, view.Panel.OpenSections, domain.SectionBrand)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/session/panel/sections/colour/toggle", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/session/panel/filters/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[SessionResponse](t, rec).Panel.FiltersCollapsed)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/session/panel/nav/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[SessionResponse](t, rec).Panel.NavCollapsed)

	rec = doRequest(t, h, http.MethodPut, "/api/v1/session/panel/mobile-filters", token,
		map[string]any{"open": false, "url": "/vehicles?filters=1&page=2"})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[SessionResponse](t, rec)
	assert.False(t, view.Panel.MobileFiltersOpen)
	assert.Equal(t, "/vehicles?page=2", view.ReplaceURL)

	rec = doRequest(t, h, http.MethodPut, "/api/v1/session/panel/mobile-filters", token, map[string]any{"url": "/"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_Unauthorized(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := startSession(t, h, "/vehicles").Token
	tampered := token[:len(token)-2] + strings.Repeat("x", 2)
	rec = doRequest(t, h, http.MethodGet, "/api/v1/session", tampered, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContent(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/pages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.ContentPage](t, rec), 8)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/pages/support", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "support", decode[domain.ContentPage](t, rec).Slug)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/pages/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/navigation?path=/vehicles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	nav := decode[domain.Navigation](t, rec)
	assert.True(t, nav.ShowFilters)
	assert.True(t, nav.ShowMobileNav)
	assert.True(t, nav.Primary[1].Active)
	assert.True(t, nav.Mobile[1].Active)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MOTO RENTALS.", decode[domain.Home](t, rec).Brand)
}

func TestRouter_RateLimit(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		h := newTestRouterWithConfig(t, config.HTTPConfig{CORSOrigin: "*", RateLimitRPS: 0.001, RateLimitBurst: 1})
		assert.Equal(t, http.StatusOK, doRequest(t, h, http.MethodGet, "/healthcheck", "", nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(t, h, http.MethodGet, "/healthcheck", "", nil).Code)
	})

	t.Run("DisabledWithZeroRate", func(t *testing.T) {
		h := newTestRouterWithConfig(t, config.HTTPConfig{CORSOrigin: "*"})
		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doRequest(t, h, http.MethodGet, "/healthcheck", "", nil).Code)
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)
	rec := doRequest(t, h, http.MethodOptions, "/api/v1/session", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
