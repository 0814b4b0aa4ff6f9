// Package main implements the entry point for the TreeTap API server,
// the backend of the task-list application.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/treetap/treetap-api/internal/config"
	"github.com/treetap/treetap-api/internal/platform/logger"
)

// main initializes configuration and logging, wires the application
// dependencies, and runs the HTTP server until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Configuration-level failures here are fatal; nothing is retried.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger), nil
}
