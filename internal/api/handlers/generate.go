package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apimiddleware "github.com/Project-Sylos/Mimic/internal/api/middleware"
	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/internal/metrics"
	"github.com/Project-Sylos/Mimic/sdk"
)

// maxBodyBytes bounds generate request bodies
const maxBodyBytes = 64 << 10

// GenerateHandler handles batch generation endpoints
type GenerateHandler struct {
	BaseHandler
	mimic   *sdk.Mimic
	metrics *metrics.Metrics
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(m *sdk.Mimic, mt *metrics.Metrics) *GenerateHandler {
	return &GenerateHandler{
		mimic:   m,
		metrics: mt,
	}
}

// Generate handles the original endpoint and responds with a bare array of records
func (h *GenerateHandler) Generate(w http.ResponseWriter, req *http.Request) {
	batch, ok := h.generate(w, req)
	if !ok {
		return
	}
	h.sendJSON(w, http.StatusOK, batch.Records)
}

// GenerateV1 handles the versioned endpoint and wraps the batch in an APIResponse
func (h *GenerateHandler) GenerateV1(w http.ResponseWriter, req *http.Request) {
	batch, ok := h.generate(w, req)
	if !ok {
		return
	}
	h.sendSuccess(w, fmt.Sprintf("Generated %d records", len(batch.Records)), batch)
}

func (h *GenerateHandler) generate(w http.ResponseWriter, req *http.Request) (*sdk.Batch, bool) {
	log := logger.FromContext(req.Context())

	var request sdk.GenerationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&request); err != nil {
		h.metrics.ObserveFailure("InvalidRequest")
		h.sendError(w, http.StatusBadRequest, "InvalidRequest", fmt.Sprintf("Invalid request body: %v", err))
		return nil, false
	}

	start := time.Now()
	batch, err := h.mimic.Generate(req.Context(), request)
	if err != nil {
		kind := sdk.ErrorKind(err)
		h.metrics.ObserveFailure(kind)
		if sdk.IsValidation(err) {
			log.Debug("rejected generate request", "kind", kind, "error", err)
			h.sendError(w, http.StatusBadRequest, kind, err.Error())
			return nil, false
		}
		log.Error("generation failed", "error", err)
		h.sendError(w, http.StatusInternalServerError, kind, fmt.Sprintf("Failed to generate records: %v", err))
		return nil, false
	}

	h.metrics.ObserveBatch(batch.Region, len(batch.Records), batch.Cached, time.Since(start))
	w.Header().Set(apimiddleware.FingerprintHeader, batch.Fingerprint)
	return batch, true
}
