package usecase

import (
	"context"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
)

type DefaultReportUsecase struct {
	repo    domain.ReportRepository
	metrics *metrics.ETLMetrics
}

func NewDefaultReportUsecase(repo domain.ReportRepository, etlMetrics *metrics.ETLMetrics) *DefaultReportUsecase {
	return &DefaultReportUsecase{repo: repo, metrics: etlMetrics}
}

func (uc *DefaultReportUsecase) DailySummary(ctx context.Context, date time.Time) (*domain.DailyTransactionSummary, error) {
	uc.metrics.RecordReportQuery("daily_summary")
	return uc.repo.DailySummary(ctx, date)
}

func (uc *DefaultReportUsecase) FailedPayments(ctx context.Context, from, to time.Time) ([]*domain.FailedPayment, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}
	uc.metrics.RecordReportQuery("failed_payments")
	return uc.repo.FailedPayments(ctx, from, to)
}

func (uc *DefaultReportUsecase) SLABreaches(ctx context.Context) ([]*domain.SLABreachReport, error) {
	uc.metrics.RecordReportQuery("sla_breaches")
	return uc.repo.SLABreaches(ctx)
}

func (uc *DefaultReportUsecase) HighRiskTransactions(ctx context.Context, minRiskScore float64) ([]*domain.HighRiskTransaction, error) {
	uc.metrics.RecordReportQuery("high_risk_transactions")
	return uc.repo.HighRiskTransactions(ctx, minRiskScore)
}
