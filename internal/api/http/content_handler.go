package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"moto-rentals-backend/internal/service"
)

type ContentHandler struct {
	content service.ContentService
}

func NewContentHandler(content service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.content.ListPages(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.content.GetPage(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ContentHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	nav, err := h.content.Navigation(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nav)
}

func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.content.Home(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}
