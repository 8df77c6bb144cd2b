package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

// VetsHandler serves the directory browsing endpoints over the register.
type VetsHandler struct {
	logger *observability.Logger
	store  *store.Store
}

// NewVetsHandler creates a new directory handler.
func NewVetsHandler(logger *observability.Logger, st *store.Store) *VetsHandler {
	return &VetsHandler{
		logger: logger,
		store:  st,
	}
}

// vetListResponse is the directory listing payload.
type vetListResponse struct {
	Total int               `json:"total"`
	Vets  []store.VetRecord `json:"vets"`
}

// List handles GET /api/v1/vets with optional district, animal, emergency,
// q and limit query parameters.
func (h *VetsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := store.FilterOptions{
		District: q.Get("district"),
		Animal:   q.Get("animal"),
		Query:    q.Get("q"),
	}
	if opts.District != "" && !store.IsDistrict(opts.District) {
		writeError(w, http.StatusBadRequest, "unknown district", opts.District)
		return
	}
	if v := q.Get("emergency"); v != "" {
		emergency, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid emergency parameter", err.Error())
			return
		}
		opts.EmergencyOnly = emergency
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", "")
			return
		}
		opts.Limit = limit
	}

	vets := h.store.Filter(opts)
	if vets == nil {
		vets = []store.VetRecord{}
	}

	writeJSON(w, http.StatusOK, vetListResponse{Total: len(vets), Vets: vets})
}

// Get handles GET /api/v1/vets/{registrationNo}.
func (h *VetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	regNo := chi.URLParam(r, "registrationNo")

	rec, ok := h.store.Get(regNo)
	if !ok {
		writeError(w, http.StatusNotFound, "vet not found", "")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Districts handles GET /api/v1/districts.
func (h *VetsHandler) Districts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"districts": store.Districts})
}
