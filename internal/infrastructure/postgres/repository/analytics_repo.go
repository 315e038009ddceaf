package repository

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"gorm.io/gorm"
)

// DefaultAnalyticsRepository reads the pre-aggregated analytical views
// created by the SQL migrations.
type DefaultAnalyticsRepository struct {
	DB *gorm.DB
}

func NewDefaultAnalyticsRepository(db *gorm.DB) *DefaultAnalyticsRepository {
	return &DefaultAnalyticsRepository{DB: db}
}

func (r *DefaultAnalyticsRepository) PaymentAnalytics(ctx context.Context, limit int) ([]*domain.PaymentAnalyticsRow, error) {
	var rows []*domain.PaymentAnalyticsRow
	err := r.DB.WithContext(ctx).
		Raw(`SELECT * FROM vw_payment_analytics ORDER BY payment_date DESC LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultAnalyticsRepository) MerchantPerformance(ctx context.Context) ([]*domain.MerchantPerformanceRow, error) {
	var rows []*domain.MerchantPerformanceRow
	err := r.DB.WithContext(ctx).
		Raw(`SELECT * FROM vw_merchant_performance ORDER BY total_revenue DESC NULLS LAST`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultAnalyticsRepository) CustomerInsights(ctx context.Context, limit int) ([]*domain.CustomerInsightRow, error) {
	var rows []*domain.CustomerInsightRow
	err := r.DB.WithContext(ctx).
		Raw(`SELECT * FROM vw_customer_insights ORDER BY total_spent DESC NULLS LAST LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
