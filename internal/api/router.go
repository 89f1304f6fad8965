package api

import (
	"fmt"
	"time"

	"github.com/Project-Sylos/Mimic/internal/api/handlers"
	apimiddleware "github.com/Project-Sylos/Mimic/internal/api/middleware"
	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/internal/metrics"
	"github.com/Project-Sylos/Mimic/internal/types"
	"github.com/Project-Sylos/Mimic/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router represents the HTTP API router
type Router struct {
	mimic   *sdk.Mimic
	config  *types.APIConfig
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewRouter creates a new API router
func NewRouter(m *sdk.Mimic, cfg *types.APIConfig, mt *metrics.Metrics, log logger.Logger) *Router {
	return &Router{mimic: m, config: cfg, metrics: mt, log: log}
}

// SetupRoutes configures all API routes using modular handlers
func (r *Router) SetupRoutes() (*chi.Mux, error) {
	rateLimit, err := apimiddleware.RateLimit(r.config.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rate limiting: %w", err)
	}

	router := chi.NewRouter()

	// Standard middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.RequestLogger(r.log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Custom middleware
	router.Use(apimiddleware.CORS(r.config.AllowedOrigins))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	generateHandler := handlers.NewGenerateHandler(r.mimic, r.metrics)
	regionHandler := handlers.NewRegionHandler(r.mimic)
	systemHandler := handlers.NewSystemHandler(r.mimic)

	// Health check and metrics
	router.Get("/health", healthHandler.HealthCheck)
	router.Method("GET", "/metrics", r.metrics.Handler())

	router.Route("/api", func(api chi.Router) {
		api.Use(rateLimit)

		// Original contract: bare array of records
		api.Post("/generate", generateHandler.Generate)

		api.Route("/v1", func(v1 chi.Router) {
			v1.Post("/generate", generateHandler.GenerateV1)

			v1.Route("/regions", func(regions chi.Router) {
				regions.Get("/", regionHandler.ListRegions)
				regions.Get("/{region}", regionHandler.GetRegion)
			})

			v1.Get("/config", systemHandler.GetConfig)
		})
	})

	return router, nil
}
