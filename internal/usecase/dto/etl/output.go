package etl

import (
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

// RunReport summarizes one completed ETL run.
type RunReport struct {
	RunID       string           `json:"run_id"`
	StartedAt   time.Time        `json:"started_at"`
	Duration    time.Duration    `json:"duration"`
	Customers   domain.LoadStats `json:"customers"`
	Merchants   domain.LoadStats `json:"merchants"`
	Payments    domain.LoadStats `json:"payments"`
	Settlements domain.LoadStats `json:"settlements"`

	SuspiciousPayments int `json:"suspicious_payments"`
	SLABreaches        int `json:"sla_breaches"`
}
