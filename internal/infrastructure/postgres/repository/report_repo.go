package repository

import (
	"context"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"gorm.io/gorm"
)

// DefaultReportRepository answers the parameterized monitoring reports with
// SQL executed against the base tables.
type DefaultReportRepository struct {
	DB *gorm.DB
}

func NewDefaultReportRepository(db *gorm.DB) *DefaultReportRepository {
	return &DefaultReportRepository{DB: db}
}

func (r *DefaultReportRepository) DailySummary(ctx context.Context, date time.Time) (*domain.DailyTransactionSummary, error) {
	var summary domain.DailyTransactionSummary
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_transactions,
			COUNT(*) FILTER (WHERE payment_status = 'SUCCESS') AS successful_transactions,
			COUNT(*) FILTER (WHERE payment_status = 'FAILED') AS failed_transactions,
			COUNT(*) FILTER (WHERE payment_status = 'PENDING') AS pending_transactions,
			COUNT(*) FILTER (WHERE payment_status = 'REFUNDED') AS refunded_transactions,
			COALESCE(SUM(amount), 0) AS total_amount,
			CASE WHEN COUNT(*) > 0
				THEN ROUND(COUNT(*) FILTER (WHERE payment_status = 'SUCCESS')::DECIMAL / COUNT(*)::DECIMAL * 100, 2)
				ELSE 0
			END AS success_rate,
			COALESCE(AVG(amount), 0) AS avg_transaction_amount,
			COALESCE(SUM(amount) FILTER (WHERE payment_status = 'SUCCESS'), 0) AS total_revenue
		FROM payments
		WHERE DATE(transaction_date) = DATE(?)`, date).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.TotalTransactions == 0 {
		return nil, domain.ErrNoDataForDate
	}

	summary.TransactionDate = date.UTC().Truncate(24 * time.Hour)
	return &summary, nil
}

func (r *DefaultReportRepository) FailedPayments(ctx context.Context, start, end time.Time) ([]*domain.FailedPayment, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	var failed []*domain.FailedPayment
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			p.payment_id,
			p.customer_id,
			c.customer_name,
			m.merchant_name,
			p.amount,
			p.payment_method,
			p.transaction_date,
			p.failure_reason
		FROM payments p
		JOIN customers c ON p.customer_id = c.customer_id
		JOIN merchants m ON p.merchant_id = m.merchant_id
		WHERE p.payment_status = 'FAILED'
		  AND DATE(p.transaction_date) BETWEEN DATE(?) AND DATE(?)
		ORDER BY p.transaction_date DESC`, start, end).
		Scan(&failed).Error
	if err != nil {
		return nil, err
	}
	return failed, nil
}

func (r *DefaultReportRepository) SLABreaches(ctx context.Context) ([]*domain.SLABreachReport, error) {
	var breaches []*domain.SLABreachReport
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			s.settlement_id,
			s.merchant_id,
			m.merchant_name,
			s.settlement_date,
			s.expected_settlement_date,
			DATE_PART('day', s.settlement_date - s.expected_settlement_date)::INTEGER AS days_delayed,
			s.total_amount,
			s.net_amount
		FROM settlements s
		JOIN merchants m ON s.merchant_id = m.merchant_id
		WHERE s.sla_breach = TRUE
		ORDER BY days_delayed DESC`).
		Scan(&breaches).Error
	if err != nil {
		return nil, err
	}
	return breaches, nil
}

func (r *DefaultReportRepository) HighRiskTransactions(ctx context.Context, riskThreshold float64) ([]*domain.HighRiskTransaction, error) {
	var transactions []*domain.HighRiskTransaction
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			p.payment_id,
			p.customer_id,
			c.customer_name,
			p.amount,
			p.risk_score,
			p.transaction_date,
			p.payment_status
		FROM payments p
		JOIN customers c ON p.customer_id = c.customer_id
		WHERE (p.risk_score >= ? OR p.is_suspicious = TRUE)
		  AND p.payment_status != 'REFUNDED'
		ORDER BY p.risk_score DESC, p.transaction_date DESC`, riskThreshold).
		Scan(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
