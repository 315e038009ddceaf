package usecase

import (
	"context"
	"errors"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/metrics"
	rediscache "github.com/finwatch/payments-analytics-service/internal/infrastructure/redis"
	"go.uber.org/zap"
)

// DefaultAnalyticsUsecase serves the aggregate views through a cache-aside
// layer. A cache failure degrades to a direct database read.
type DefaultAnalyticsUsecase struct {
	repo    domain.AnalyticsRepository
	cache   ReportCache
	metrics *metrics.ETLMetrics
	logger  *zap.Logger
}

func NewDefaultAnalyticsUsecase(
	repo domain.AnalyticsRepository,
	cache ReportCache,
	etlMetrics *metrics.ETLMetrics,
	logger *zap.Logger,
) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{
		repo:    repo,
		cache:   cache,
		metrics: etlMetrics,
		logger:  logger,
	}
}

func (uc *DefaultAnalyticsUsecase) PaymentAnalytics(ctx context.Context, limit int) ([]*domain.PaymentAnalyticsRow, error) {
	uc.metrics.RecordReportQuery("payment_analytics")

	key := rediscache.PaymentAnalyticsKey(limit)
	var cached []*domain.PaymentAnalyticsRow
	if uc.lookup(ctx, "payment_analytics", key, &cached) {
		return cached, nil
	}

	rows, err := uc.repo.PaymentAnalytics(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, key, rows)
	return rows, nil
}

func (uc *DefaultAnalyticsUsecase) MerchantPerformance(ctx context.Context) ([]*domain.MerchantPerformanceRow, error) {
	uc.metrics.RecordReportQuery("merchant_performance")

	key := rediscache.MerchantPerformanceKey()
	var cached []*domain.MerchantPerformanceRow
	if uc.lookup(ctx, "merchant_performance", key, &cached) {
		return cached, nil
	}

	rows, err := uc.repo.MerchantPerformance(ctx)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, key, rows)
	return rows, nil
}

func (uc *DefaultAnalyticsUsecase) CustomerInsights(ctx context.Context, limit int) ([]*domain.CustomerInsightRow, error) {
	uc.metrics.RecordReportQuery("customer_insights")

	key := rediscache.CustomerInsightsKey(limit)
	var cached []*domain.CustomerInsightRow
	if uc.lookup(ctx, "customer_insights", key, &cached) {
		return cached, nil
	}

	rows, err := uc.repo.CustomerInsights(ctx, limit)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, key, rows)
	return rows, nil
}

func (uc *DefaultAnalyticsUsecase) lookup(ctx context.Context, report, key string, dest any) bool {
	if uc.cache == nil {
		return false
	}
	err := uc.cache.Get(ctx, key, dest)
	if err == nil {
		uc.metrics.RecordCacheHit(report)
		return true
	}
	uc.metrics.RecordCacheMiss(report)
	if !errors.Is(err, domain.ErrCacheMiss) {
		uc.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (uc *DefaultAnalyticsUsecase) store(ctx context.Context, key string, value any) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, key, value); err != nil {
		uc.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
