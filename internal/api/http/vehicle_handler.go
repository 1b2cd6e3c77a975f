package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/gorilla/mux"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/filter"
	"moto-rentals-backend/internal/service"
)

type VehicleHandler struct {
	catalog service.CatalogService
}

func NewVehicleHandler(catalog service.CatalogService) *VehicleHandler {
	return &VehicleHandler{catalog: catalog}
}

// List filters the catalog statelessly from query parameters. Unknown
// parameters are ignored; invalid values answer 400.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, err := h.stateFromQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	vehicles, err := h.catalog.Search(ctx, state)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapVehicleList(vehicles))
}

func (h *VehicleHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.catalog.Options(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: vehicle id %q", errBadRequest, mux.Vars(r)["id"]))
		return
	}
	v, err := h.catalog.GetVehicle(r.Context(), int32(id))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapVehicleToDetail(*v))
}

var scalarParams = []struct {
	param string
	key   domain.FilterKey
}{
	{"rental_type", domain.FilterRentalType},
	{"available_now", domain.FilterAvailableNowOnly},
	{"transmission", domain.FilterTransmission},
	{"price_min", domain.FilterPriceMin},
	{"price_max", domain.FilterPriceMax},
}

var setParams = []struct {
	param string
	key   domain.FilterKey
}{
	{"brand", domain.FilterBrands},
	{"model_year", domain.FilterModelYears},
	{"body_type", domain.FilterBodyTypes},
	{"fuel_type", domain.FilterFuelTypes},
}

func (h *VehicleHandler) stateFromQuery(ctx context.Context, q url.Values) (domain.FilterState, error) {
	opts, err := h.catalog.Options(ctx)
	if err != nil {
		return domain.FilterState{}, err
	}
	state := h.catalog.DefaultState(ctx)

	for _, p := range scalarParams {
		v := q.Get(p.param)
		if v == "" {
			continue
		}
		if state, err = filter.SetField(state, opts.PriceBounds, p.key, v); err != nil {
			return domain.FilterState{}, err
		}
	}
	for _, p := range setParams {
		for _, v := range q[p.param] {
			if slices.Contains(selected(state, p.key), v) {
				continue
			}
			if state, err = filter.ToggleArrayMember(state, p.key, v); err != nil {
				return domain.FilterState{}, err
			}
		}
	}
	return state, nil
}

func selected(s domain.FilterState, key domain.FilterKey) []string {
	switch key {
	case domain.FilterBrands:
		return s.Brands
	case domain.FilterModelYears:
		return s.ModelYears
	case domain.FilterBodyTypes:
		return s.BodyTypes
	case domain.FilterFuelTypes:
		return s.FuelTypes
	}
	return nil
}
