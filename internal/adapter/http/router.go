package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/shopledger/internal/adapter/http/handler"
	"github.com/iho/shopledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PartyHandler       *handler.PartyHandler
	StatementHandler   *handler.StatementHandler
	OutstandingHandler *handler.OutstandingHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1, scoped to one shop per request
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Tenant)
		r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)

		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.PartyHandler.Create)
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
			r.Post("/{id}/invoices", cfg.PartyHandler.RecordInvoice)
			r.Post("/{id}/purchases", cfg.PartyHandler.RecordPurchase)
			r.Post("/{id}/payments", cfg.PartyHandler.RecordPayment)
			r.Get("/{id}/statement", cfg.StatementHandler.Get)
		})

		r.Get("/outstanding", cfg.OutstandingHandler.Get)
	})

	return r
}
