package domain

import "time"

type PaymentStatus string

const (
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID                string        `json:"payment_id"`
	CustomerID        string        `json:"customer_id"`
	MerchantID        string        `json:"merchant_id"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	PaymentMethod     string        `json:"payment_method"`
	Status            PaymentStatus `json:"payment_status"`
	TransactionDate   time.Time     `json:"transaction_date"`
	ProcessingSeconds int           `json:"processing_time_seconds"`
	FailureReason     *string       `json:"failure_reason,omitempty"`
	RiskScore         float64       `json:"risk_score"`
	Suspicious        bool          `json:"is_suspicious"`
}
