package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/treetap/treetap-api/internal/api"
	apiMiddleware "github.com/treetap/treetap-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORSMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.accountStore)
	taskHandler := api.NewTaskHandler(app.accountStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware()

	// Register routes

	// Authentication endpoints (public)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", taskHandler.GetTasks)
		r.Post("/", taskHandler.PutTasks)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
