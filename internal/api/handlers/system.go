package handlers

import (
	"net/http"

	"github.com/Project-Sylos/Mimic/sdk"
)

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	BaseHandler
	mimic *sdk.Mimic
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(m *sdk.Mimic) *SystemHandler {
	return &SystemHandler{
		mimic: m,
	}
}

// GetConfig handles the get config endpoint
func (h *SystemHandler) GetConfig(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Config retrieved successfully", h.mimic.GetConfig())
}
