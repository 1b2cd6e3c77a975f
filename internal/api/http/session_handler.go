package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/security"
	"moto-rentals-backend/internal/service"
)

// DefaultLandingURL is used when a session is started without a URL.
const DefaultLandingURL = "/vehicles"

type SessionHandler struct {
	sessions service.SessionService
	tokens   security.TokenManager
}

func NewSessionHandler(sessions service.SessionService, tokens security.TokenManager) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens}
}

type startSessionRequest struct {
	URL string `json:"url"`
}

type setFieldRequest struct {
	Value any `json:"value"`
}

type toggleMemberRequest struct {
	Value string `json:"value"`
}

type selectVehicleRequest struct {
	VehicleID *int32 `json:"vehicle_id"`
}

type mobileFiltersRequest struct {
	Open *bool  `json:"open"`
	URL  string `json:"url"`
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, err)
		return
	}
	if req.URL == "" {
		req.URL = DefaultLandingURL
	}

	view, err := h.sessions.Start(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	token, err := h.tokens.GenerateSessionToken(view.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.InfoContext(r.Context(), "Session started", "sessionID", view.ID, "mobileFiltersOpen", view.Panel.MobileFiltersOpen)
	w.Header().Set(SessionTokenHeader, token)
	writeJSON(w, http.StatusCreated, MapSessionView(view, token))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Get(r.Context(), sessionIDFromContext(r.Context()))
	h.respond(w, r, view, err)
}

func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.Context(), sessionIDFromContext(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	key := domain.FilterKey(mux.Vars(r)["key"])
	view, err := h.sessions.SetField(r.Context(), sessionIDFromContext(r.Context()), key, req.Value)
	h.respond(w, r, view, err)
}

func (h *SessionHandler) ToggleArrayMember(w http.ResponseWriter, r *http.Request) {
	var req toggleMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	key := domain.FilterKey(mux.Vars(r)["key"])
	view, err := h.sessions.ToggleArrayMember(r.Context(), sessionIDFromContext(r.Context()), key, req.Value)
	h.respond(w, r, view, err)
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Reset(r.Context(), sessionIDFromContext(r.Context()))
	h.respond(w, r, view, err)
}

func (h *SessionHandler) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	var req selectVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.sessions.SelectVehicle(r.Context(), sessionIDFromContext(r.Context()), req.VehicleID)
	h.respond(w, r, view, err)
}

func (h *SessionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.SelectVehicle(r.Context(), sessionIDFromContext(r.Context()), nil)
	h.respond(w, r, view, err)
}

func (h *SessionHandler) ToggleFiltersCollapsed(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.ToggleFiltersCollapsed(r.Context(), sessionIDFromContext(r.Context()))
	h.respond(w, r, view, err)
}

func (h *SessionHandler) ToggleNavCollapsed(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.ToggleNavCollapsed(r.Context(), sessionIDFromContext(r.Context()))
	h.respond(w, r, view, err)
}

func (h *SessionHandler) ToggleSection(w http.ResponseWriter, r *http.Request) {
	section := domain.SectionID(mux.Vars(r)["section"])
	view, err := h.sessions.ToggleSection(r.Context(), sessionIDFromContext(r.Context()), section)
	h.respond(w, r, view, err)
}

func (h *SessionHandler) SetMobileFilters(w http.ResponseWriter, r *http.Request) {
	var req mobileFiltersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Open == nil {
		writeError(w, r, fmt.Errorf("%w: open is required", errBadRequest))
		return
	}
	view, err := h.sessions.SetMobileFiltersOpen(r.Context(), sessionIDFromContext(r.Context()), *req.Open, req.URL)
	h.respond(w, r, view, err)
}

// respond writes the session view and slides the handle's expiry forward.
func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, view *service.SessionView, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if token, err := h.tokens.GenerateSessionToken(view.ID); err != nil {
		logger.WarnContext(r.Context(), "Failed to refresh session token", "sessionID", view.ID, "error", err)
	} else {
		w.Header().Set(SessionTokenHeader, token)
	}
	writeJSON(w, http.StatusOK, MapSessionView(view, ""))
}
