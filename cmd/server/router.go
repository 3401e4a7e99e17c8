package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/assessify/assessment-api/internal/api"
	apiMiddleware "github.com/assessify/assessment-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// The API is consumed by browser frontends served from arbitrary
	// origins, so CORS stays wide open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	assessmentHandler := api.NewAssessmentHandler(app.assessmentService, app.logger)

	// Register routes
	r.Route("/api/v2", func(r chi.Router) {
		r.Get("/", assessmentHandler.Greeting)
		r.Post("/generate_assessment", assessmentHandler.GenerateAssessment)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus exposition
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
