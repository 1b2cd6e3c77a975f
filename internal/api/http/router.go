package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"moto-rentals-backend/internal/config"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/security"
	"moto-rentals-backend/internal/service"
)

const serviceName = "moto-rentals-api"

type Services struct {
	Catalog  service.CatalogService
	Sessions service.SessionService
	Content  service.ContentService
	Tokens   security.TokenManager
}

// NewRouter wires every route under /api/v1 plus the root healthcheck and
// wraps them in the middleware chain.
func NewRouter(svc Services, cfg config.HTTPConfig) http.Handler {
	vehicles := NewVehicleHandler(svc.Catalog)
	sessions := NewSessionHandler(svc.Sessions, svc.Tokens)
	content := NewContentHandler(svc.Content)

	router := mux.NewRouter()
	router.HandleFunc("/healthcheck", healthcheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/options", vehicles.Options).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vehicles.Get).Methods(http.MethodGet)

	api.HandleFunc("/sessions", sessions.Start).Methods(http.MethodPost)

	session := api.PathPrefix("/session").Subrouter()
	session.Use(mux.MiddlewareFunc(RequireSession(svc.Tokens)))
	session.HandleFunc("", sessions.Get).Methods(http.MethodGet)
	session.HandleFunc("", sessions.End).Methods(http.MethodDelete)
	session.HandleFunc("/filters/reset", sessions.Reset).Methods(http.MethodPost)
	session.HandleFunc("/filters/{key}", sessions.SetField).Methods(http.MethodPut)
	session.HandleFunc("/filters/{key}/toggle", sessions.ToggleArrayMember).Methods(http.MethodPost)
	session.HandleFunc("/selection", sessions.SelectVehicle).Methods(http.MethodPut)
	session.HandleFunc("/selection", sessions.ClearSelection).Methods(http.MethodDelete)
	session.HandleFunc("/panel/filters/toggle", sessions.ToggleFiltersCollapsed).Methods(http.MethodPost)
	session.HandleFunc("/panel/nav/toggle", sessions.ToggleNavCollapsed).Methods(http.MethodPost)
	session.HandleFunc("/panel/sections/{section}/toggle", sessions.ToggleSection).Methods(http.MethodPost)
	session.HandleFunc("/panel/mobile-filters", sessions.SetMobileFilters).Methods(http.MethodPut)

	api.HandleFunc("/pages", content.ListPages).Methods(http.MethodGet)
	api.HandleFunc("/pages/{slug}", content.GetPage).Methods(http.MethodGet)
	api.HandleFunc("/navigation", content.Navigation).Methods(http.MethodGet)
	api.HandleFunc("/home", content.Home).Methods(http.MethodGet)

	log := logger.WithService(serviceName)
	mw := []Middleware{Recover(log), Logger(log), CORS(cfg.CORSOrigin)}
	if cfg.RateLimitRPS > 0 {
		mw = append(mw, RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	mw = append(mw, OTel(serviceName))
	return Chain(router, mw...)
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
