package domain

import (
	"context"
	"time"
)

// Read models for the reporting and analytics queries. Field names follow the
// column names produced by the SQL so rows scan directly.

type DailyTransactionSummary struct {
	TransactionDate        time.Time `json:"transaction_date"`
	TotalTransactions      int64     `json:"total_transactions"`
	SuccessfulTransactions int64     `json:"successful_transactions"`
	FailedTransactions     int64     `json:"failed_transactions"`
	PendingTransactions    int64     `json:"pending_transactions"`
	RefundedTransactions   int64     `json:"refunded_transactions"`
	TotalAmount            float64   `json:"total_amount"`
	SuccessRate            float64   `json:"success_rate"`
	AvgTransactionAmount   float64   `json:"avg_transaction_amount"`
	TotalRevenue           float64   `json:"total_revenue"`
}

type FailedPayment struct {
	PaymentID       string    `json:"payment_id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	MerchantName    string    `json:"merchant_name"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	TransactionDate time.Time `json:"transaction_date"`
	FailureReason   string    `json:"failure_reason"`
}

type SLABreachReport struct {
	SettlementID           string    `json:"settlement_id"`
	MerchantID             string    `json:"merchant_id"`
	MerchantName           string    `json:"merchant_name"`
	SettlementDate         time.Time `json:"settlement_date"`
	ExpectedSettlementDate time.Time `json:"expected_settlement_date"`
	DaysDelayed            int       `json:"days_delayed"`
	TotalAmount            float64   `json:"total_amount"`
	NetAmount              float64   `json:"net_amount"`
}

type HighRiskTransaction struct {
	PaymentID       string    `json:"payment_id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Amount          float64   `json:"amount"`
	RiskScore       float64   `json:"risk_score"`
	TransactionDate time.Time `json:"transaction_date"`
	PaymentStatus   string    `json:"payment_status"`
}

type PaymentAnalyticsRow struct {
	PaymentDate       time.Time `json:"payment_date"`
	PaymentStatus     string    `json:"payment_status"`
	PaymentMethod     string    `json:"payment_method"`
	Currency          string    `json:"currency"`
	MerchantName      string    `json:"merchant_name"`
	BusinessType      string    `json:"business_type"`
	CustomerCountry   string    `json:"customer_country"`
	TransactionCount  int64     `json:"transaction_count"`
	TotalAmount       float64   `json:"total_amount"`
	AvgAmount         float64   `json:"avg_amount"`
	AvgProcessingTime float64   `json:"avg_processing_time"`
	SuspiciousCount   int64     `json:"suspicious_count"`
}

type MerchantPerformanceRow struct {
	MerchantID             string  `json:"merchant_id"`
	MerchantName           string  `json:"merchant_name"`
	BusinessType           string  `json:"business_type"`
	Status                 string  `json:"status"`
	TotalTransactions      int64   `json:"total_transactions"`
	SuccessfulTransactions int64   `json:"successful_transactions"`
	FailedTransactions     int64   `json:"failed_transactions"`
	TotalRevenue           float64 `json:"total_revenue"`
	AvgTransactionAmount   float64 `json:"avg_transaction_amount"`
	SuccessRate            float64 `json:"success_rate"`
}

type CustomerInsightRow struct {
	CustomerID             string     `json:"customer_id"`
	CustomerName           string     `json:"customer_name"`
	Email                  string     `json:"email"`
	Country                string     `json:"country"`
	CreditScore            int        `json:"credit_score"`
	RiskCategory           string     `json:"risk_category"`
	TotalTransactions      int64      `json:"total_transactions"`
	TotalSpent             float64    `json:"total_spent"`
	AvgTransactionAmount   float64    `json:"avg_transaction_amount"`
	FailedTransactionCount int64      `json:"failed_transaction_count"`
	LastTransactionDate    *time.Time `json:"last_transaction_date"`
}

type ReportRepository interface {
	DailySummary(ctx context.Context, date time.Time) (*DailyTransactionSummary, error)
	FailedPayments(ctx context.Context, start, end time.Time) ([]*FailedPayment, error)
	SLABreaches(ctx context.Context) ([]*SLABreachReport, error)
	HighRiskTransactions(ctx context.Context, riskThreshold float64) ([]*HighRiskTransaction, error)
}

type AnalyticsRepository interface {
	PaymentAnalytics(ctx context.Context, limit int) ([]*PaymentAnalyticsRow, error)
	MerchantPerformance(ctx context.Context) ([]*MerchantPerformanceRow, error)
	CustomerInsights(ctx context.Context, limit int) ([]*CustomerInsightRow, error)
}
