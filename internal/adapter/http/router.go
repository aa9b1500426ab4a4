package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/clinilab/clinilab/internal/adapter/http/handler"
	"github.com/clinilab/clinilab/internal/adapter/http/middleware"
	"github.com/clinilab/clinilab/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DashboardHandler *handler.DashboardHandler
	ReceiptHandler   *handler.ReceiptHandler
	ExpenseHandler   *handler.ExpenseHandler
	OperationHandler *handler.OperationHandler
	CashCutHandler   *handler.CashCutHandler
	CatalogHandler   *handler.CatalogHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRequestLogger(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Dashboard
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", cfg.DashboardHandler.Stats)
			r.Get("/summary", cfg.DashboardHandler.Summary)
			r.Get("/status", cfg.DashboardHandler.StatusCounts)
		})

		// Receipts
		r.Route("/receipts", func(r chi.Router) {
			r.Post("/", cfg.ReceiptHandler.Create)
			r.Get("/", cfg.ReceiptHandler.List)
			r.Get("/{id}", cfg.ReceiptHandler.Get)
			r.Post("/{id}/payments", cfg.ReceiptHandler.RecordPayment)
			r.Put("/{id}/status", cfg.ReceiptHandler.UpdateStatus)
		})

		// Expenses
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
		})

		// Manual operations
		r.Route("/operations", func(r chi.Router) {
			r.Post("/", cfg.OperationHandler.Create)
			r.Get("/", cfg.OperationHandler.List)
			r.Delete("/{id}", cfg.OperationHandler.Delete)
		})

		// Cash cuts
		r.Route("/cash-cuts", func(r chi.Router) {
			r.Get("/preview", cfg.CashCutHandler.Preview)
			r.Post("/", cfg.CashCutHandler.Create)
			r.Get("/", cfg.CashCutHandler.List)
		})

		// Catalogs
		r.Route("/catalogs", func(r chi.Router) {
			r.Get("/branches", cfg.CatalogHandler.ListBranches)
			r.Get("/patients", cfg.CatalogHandler.ListPatients)
			r.Get("/doctors", cfg.CatalogHandler.ListDoctors)
			r.Get("/providers", cfg.CatalogHandler.ListProviders)
			r.Get("/services", cfg.CatalogHandler.ListServices)
		})
	})

	return r
}
