package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"admin-console/config"
	_ "admin-console/docs" // Swagger docs
	consoleHTTP "admin-console/internal/console/delivery/http"
	"admin-console/internal/console/repository/remote"
	"admin-console/internal/entities"
	"admin-console/internal/httpserver"
	"admin-console/pkg/log"
)

// @title       Admin Console API
// @description Backend-for-frontend of the mall admin console: list, create, update and delete pages for categories, login logs, recommended subjects and return reasons.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Admin Console API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Console domain: one backend client shared by every entity
	client := remote.NewClient(ctx, entities.ClientConfig(cfg.Backend))
	registry := entities.NewRegistry(client, cfg.Entities, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Registry:       registry,
		Sessions: consoleHTTP.SessionConfig{
			Max:       cfg.Session.Max,
			TTL:       cfg.Session.TTL,
			NoticeTTL: cfg.Notice.TTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
