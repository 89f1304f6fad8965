package handlers

import (
	"errors"
	"net/http"

	"github.com/Project-Sylos/Mimic/sdk"
	"github.com/go-chi/chi/v5"
)

// RegionHandler handles region catalog endpoints
type RegionHandler struct {
	BaseHandler
	mimic *sdk.Mimic
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(m *sdk.Mimic) *RegionHandler {
	return &RegionHandler{
		mimic: m,
	}
}

// ListRegions handles the list regions endpoint
func (h *RegionHandler) ListRegions(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Regions retrieved successfully", h.mimic.Regions())
}

// GetRegion handles the get region endpoint
func (h *RegionHandler) GetRegion(w http.ResponseWriter, req *http.Request) {
	key := chi.URLParam(req, "region")

	region, err := h.mimic.Region(key)
	if errors.Is(err, sdk.ErrUnknownRegion) {
		h.sendError(w, http.StatusNotFound, sdk.ErrorKind(err), err.Error())
		return
	}
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, sdk.ErrorKind(err), err.Error())
		return
	}

	h.sendSuccess(w, "Region retrieved successfully", region)
}
