package domain

import "time"

type SettlementStatus string

const (
	SettlementCompleted SettlementStatus = "COMPLETED"
	SettlementPending   SettlementStatus = "PENDING"
	SettlementFailed    SettlementStatus = "FAILED"
)

// Settlement batches the successful payments of one merchant over one
// settlement cycle. Amounts are derived sums; the settlement does not own
// payment records.
type Settlement struct {
	ID                     string           `json:"settlement_id"`
	MerchantID             string           `json:"merchant_id"`
	SettlementDate         time.Time        `json:"settlement_date"`
	TotalAmount            float64          `json:"total_amount"`
	CommissionAmount       float64          `json:"commission_amount"`
	NetAmount              float64          `json:"net_amount"`
	PaymentCount           int              `json:"payment_count"`
	Status                 SettlementStatus `json:"status"`
	SLABreach              bool             `json:"sla_breach"`
	ExpectedSettlementDate time.Time        `json:"expected_settlement_date"`
}
