package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/treetap/treetap-api/internal/config"
	"github.com/treetap/treetap-api/internal/platform/memory"
	"github.com/treetap/treetap-api/internal/service/auth"
	"github.com/treetap/treetap-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The account store is constructed once here and lives for the
// process lifetime; its contents are deliberately discarded on shutdown.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	hasher := auth.NewArgon2Hasher()

	app := &application{
		config:       cfg,
		logger:       logger,
		accountStore: memory.NewTreeStore(hasher, hasher),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The in-memory
// store needs no teardown; its state dies with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
