package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Project-Sylos/Mimic/internal/api"
	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/sdk"
)

func main() {
	// Load configuration
	configPath := getConfigPath()

	m, err := sdk.New(configPath)
	if err != nil {
		logger.GetDefault().Error("failed to initialize Mimic", "config", configPath, "error", err)
		os.Exit(1)
	}

	cfg := m.GetConfig()
	logger.Setup(cfg.Log.Level, cfg.Log.JSON)
	log := logger.GetDefault()
	log.Info("configuration loaded",
		"config", configPath,
		"host", cfg.API.Host,
		"port", cfg.API.Port,
		"cache_size", cfg.Generator.CacheSize,
	)

	server, err := api.NewServer(m, &cfg.API, log)
	if err != nil {
		log.Error("failed to create API server", "error", err)
		os.Exit(1)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sigChan
		log.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("error shutting down HTTP server", "error", err)
		}
	}()

	// I am here to serve.
	if err := server.Start(); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	<-done
	log.Info("server shutdown complete")
}

// getConfigPath returns the configuration file path
func getConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "internal/config/default.json"
}
