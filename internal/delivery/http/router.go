package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/finwatch/payments-analytics-service/internal/delivery/http/handlers"
	"github.com/finwatch/payments-analytics-service/internal/delivery/http/middleware"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	ETL       *handlers.ETLHandler
	Reports   *handlers.ReportHandler
	Analytics *handlers.AnalyticsHandler
	Health    *handlers.HealthHandler
	Logger    *zap.Logger
}

// NewRouter creates a chi router with all routes and middleware configured
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", deps.Health.Handle)

		r.Route("/etl", func(r chi.Router) {
			r.Post("/initialize", deps.ETL.HandleInitialize)
			r.Post("/run", deps.ETL.HandleRun)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily-summary", deps.Reports.HandleDailySummary)
			r.Get("/failed-payments", deps.Reports.HandleFailedPayments)
			r.Get("/sla-breaches", deps.Reports.HandleSLABreaches)
			r.Get("/high-risk-transactions", deps.Reports.HandleHighRiskTransactions)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/payment-analytics", deps.Analytics.HandlePaymentAnalytics)
			r.Get("/merchant-performance", deps.Analytics.HandleMerchantPerformance)
			r.Get("/customer-insights", deps.Analytics.HandleCustomerInsights)
		})
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
