package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mulisa/vsla-ledger/internal/adapter/http/handler"
	"github.com/mulisa/vsla-ledger/internal/adapter/http/middleware"
	"github.com/mulisa/vsla-ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MeetingHandler   *handler.MeetingHandler
	LoanHandler      *handler.LoanHandler
	BalanceHandler   *handler.BalanceHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Meetings
		r.Route("/meetings", func(r chi.Router) {
			r.Post("/process", cfg.MeetingHandler.Process)
		})

		// Groups
		r.Route("/groups/{id}", func(r chi.Router) {
			r.Get("/balance", cfg.BalanceHandler.GetGroupBalance)
			r.Get("/entries", cfg.BalanceHandler.ListEntries)
			r.Get("/loans", cfg.LoanHandler.ListByGroup)
			r.Get("/social-fund/balance", cfg.BalanceHandler.GetSocialFundBalance)
			r.Get("/reconciliation", cfg.LedgerHandler.ReconcileGroup)
		})

		// Loans
		r.Route("/loans/{id}", func(r chi.Router) {
			r.Get("/", cfg.LoanHandler.Get)
			r.Get("/transactions", cfg.LoanHandler.Transactions)
			r.Post("/repayments", cfg.LoanHandler.Repay)
			r.Post("/default", cfg.LoanHandler.Default)
		})

		// Ledger
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
