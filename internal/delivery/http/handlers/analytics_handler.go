package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultAnalyticsLimit = 100
	maxAnalyticsLimit     = 1000
)

// AnalyticsProvider serves the aggregate analytics views.
type AnalyticsProvider interface {
	PaymentAnalytics(ctx context.Context, limit int) ([]*domain.PaymentAnalyticsRow, error)
	MerchantPerformance(ctx context.Context) ([]*domain.MerchantPerformanceRow, error)
	CustomerInsights(ctx context.Context, limit int) ([]*domain.CustomerInsightRow, error)
}

type AnalyticsHandler struct {
	analytics AnalyticsProvider
	logger    *zap.Logger
}

func NewAnalyticsHandler(analytics AnalyticsProvider, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// HandlePaymentAnalytics handles GET /api/analytics/payment-analytics?limit=
func (h *AnalyticsHandler) HandlePaymentAnalytics(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	rows, err := h.analytics.PaymentAnalytics(r.Context(), limit)
	if err != nil {
		h.logger.Error("payment analytics query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to load payment analytics")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

// HandleMerchantPerformance handles GET /api/analytics/merchant-performance
func (h *AnalyticsHandler) HandleMerchantPerformance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analytics.MerchantPerformance(r.Context())
	if err != nil {
		h.logger.Error("merchant performance query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to load merchant performance")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

// HandleCustomerInsights handles GET /api/analytics/customer-insights?limit=
func (h *AnalyticsHandler) HandleCustomerInsights(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	rows, err := h.analytics.CustomerInsights(r.Context(), limit)
	if err != nil {
		h.logger.Error("customer insights query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to load customer insights")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := defaultAnalyticsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxAnalyticsLimit {
			respondWithError(w, http.StatusBadRequest, "limit must be an integer between 1 and 1000")
			return 0, false
		}
		limit = parsed
	}
	return limit, true
}
