package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAnalytics struct {
	paymentLimit  int
	insightsLimit int
}

func (s *stubAnalytics) PaymentAnalytics(_ context.Context, limit int) ([]*domain.PaymentAnalyticsRow, error) {
	s.paymentLimit = limit
	return []*domain.PaymentAnalyticsRow{{MerchantName: "Northwind Trading"}}, nil
}

func (s *stubAnalytics) MerchantPerformance(context.Context) ([]*domain.MerchantPerformanceRow, error) {
	return []*domain.MerchantPerformanceRow{{MerchantID: "MERCH0001"}}, nil
}

func (s *stubAnalytics) CustomerInsights(_ context.Context, limit int) ([]*domain.CustomerInsightRow, error) {
	s.insightsLimit = limit
	return []*domain.CustomerInsightRow{}, nil
}

func TestAnalyticsHandlerLimits(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		analytics := &stubAnalytics{}
		h := NewAnalyticsHandler(analytics, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/payment-analytics", nil)
		rec := httptest.NewRecorder()
		h.HandlePaymentAnalytics(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, defaultAnalyticsLimit, analytics.paymentLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		analytics := &stubAnalytics{}
		h := NewAnalyticsHandler(analytics, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/customer-insights?limit=25", nil)
		rec := httptest.NewRecorder()
		h.HandleCustomerInsights(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 25, analytics.insightsLimit)
	})

	t.Run("limit out of range", func(t *testing.T) {
		for _, raw := range []string{"0", "-3", "1001", "lots"} {
			h := NewAnalyticsHandler(&stubAnalytics{}, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/api/analytics/payment-analytics?limit="+raw, nil)
			rec := httptest.NewRecorder()
			h.HandlePaymentAnalytics(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", raw)
		}
	})
}

func TestAnalyticsHandlerMerchantPerformance(t *testing.T) {
	h := NewAnalyticsHandler(&stubAnalytics{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/merchant-performance", nil)
	rec := httptest.NewRecorder()
	h.HandleMerchantPerformance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MERCH0001")
}
