package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ReportProvider serves the operational reports.
type ReportProvider interface {
	DailySummary(ctx context.Context, date time.Time) (*domain.DailyTransactionSummary, error)
	FailedPayments(ctx context.Context, from, to time.Time) ([]*domain.FailedPayment, error)
	SLABreaches(ctx context.Context) ([]*domain.SLABreachReport, error)
	HighRiskTransactions(ctx context.Context, minRiskScore float64) ([]*domain.HighRiskTransaction, error)
}

type ReportHandler struct {
	reports ReportProvider
	logger  *zap.Logger
}

func NewReportHandler(reports ReportProvider, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, logger: logger}
}

// HandleDailySummary handles GET /api/reports/daily-summary?date=YYYY-MM-DD
// Date defaults to today (UTC).
func (h *ReportHandler) HandleDailySummary(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	summary, err := h.reports.DailySummary(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrNoDataForDate) {
			respondWithError(w, http.StatusNotFound, "no transactions for the requested date")
			return
		}
		h.logger.Error("daily summary query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to build daily summary")
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// HandleFailedPayments handles GET /api/reports/failed-payments?start_date=&end_date=
// The range defaults to the last 7 days.
func (h *ReportHandler) HandleFailedPayments(w http.ResponseWriter, r *http.Request) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -7)

	var err error
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
			return
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
			return
		}
		// An end date bounds the whole day, not its first instant.
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	payments, err := h.reports.FailedPayments(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			respondWithError(w, http.StatusBadRequest, "end_date precedes start_date")
			return
		}
		h.logger.Error("failed payments query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to list failed payments")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(payments),
		"payments": payments,
	})
}

// HandleSLABreaches handles GET /api/reports/sla-breaches
func (h *ReportHandler) HandleSLABreaches(w http.ResponseWriter, r *http.Request) {
	breaches, err := h.reports.SLABreaches(r.Context())
	if err != nil {
		h.logger.Error("sla breach query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to list sla breaches")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(breaches),
		"breaches": breaches,
	})
}

// HandleHighRiskTransactions handles GET /api/reports/high-risk-transactions?min_risk_score=
func (h *ReportHandler) HandleHighRiskTransactions(w http.ResponseWriter, r *http.Request) {
	minScore := 70.0
	if raw := r.URL.Query().Get("min_risk_score"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 100 {
			respondWithError(w, http.StatusBadRequest, "min_risk_score must be a number between 0 and 100")
			return
		}
		minScore = parsed
	}

	transactions, err := h.reports.HighRiskTransactions(r.Context(), minScore)
	if err != nil {
		h.logger.Error("high risk transaction query failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "failed to list high risk transactions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count":        len(transactions),
		"transactions": transactions,
	})
}
