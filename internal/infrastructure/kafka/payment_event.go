package publisher

import "time"

// SuspiciousPaymentEvent is emitted for every flagged payment after a
// successful dataset load, keyed by merchant for partition affinity.
type SuspiciousPaymentEvent struct {
	EventID         string    `json:"event_id"`
	PaymentID       string    `json:"payment_id"`
	CustomerID      string    `json:"customer_id"`
	MerchantID      string    `json:"merchant_id"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	RiskScore       float64   `json:"risk_score"`
	PaymentStatus   string    `json:"payment_status"`
	TransactionDate time.Time `json:"transaction_date"`
}
