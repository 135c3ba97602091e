// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/record-intake-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	recordHandler *handlers.RecordHandler,
	schemaHandler *handlers.SchemaHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Record intake.
		r.Post("/records/{entity}", recordHandler.BuildRecord)

		// Schema catalog reads.
		r.Get("/entities", schemaHandler.ListEntities)
		r.Get("/entities/{entity}", schemaHandler.GetEntity)
		r.Get("/entities/{entity}/fields/{field}", schemaHandler.GetField)
	})

	return r
}
