package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/internal/metrics"
	"github.com/Project-Sylos/Mimic/internal/types"
	"github.com/Project-Sylos/Mimic/sdk"
	"github.com/go-chi/chi/v5"
)

// Server represents the HTTP API server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *types.APIConfig
	log        logger.Logger
}

// NewServer creates a new API server
func NewServer(m *sdk.Mimic, config *types.APIConfig, log logger.Logger) (*Server, error) {
	router, err := NewRouter(m, config, metrics.New(), log).SetupRoutes()
	if err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         Addr(config),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		config: config,
		log:    log,
	}, nil
}

// Addr returns the host:port the server listens on
func Addr(config *types.APIConfig) string {
	return fmt.Sprintf("%s:%d", config.Host, config.Port)
}

// Start starts the HTTP server and blocks until it stops. A graceful
// Shutdown is not reported as an error.
func (s *Server) Start() error {
	addr := s.httpServer.Addr
	s.log.Info("starting Mimic API server", "addr", addr)
	s.log.Info("endpoints",
		"generate", fmt.Sprintf("http://%s/api/generate", addr),
		"v1", fmt.Sprintf("http://%s/api/v1/", addr),
		"health", fmt.Sprintf("http://%s/health", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// GetRouter returns the configured router
func (s *Server) GetRouter() *chi.Mux {
	return s.router
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
