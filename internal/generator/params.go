package generator

import (
	"fmt"
	"time"
)

// Id namespaces are fixed-width, so each entity count has a hard ceiling.
const (
	MaxCustomers = 99999  // CUST%05d
	MaxMerchants = 9999   // MERCH%04d
	MaxPayments  = 999999 // PAY%06d
)

// ConfigError reports invalid generation parameters. Validation runs before
// any record is produced.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid generator config: %s: %s", e.Field, e.Reason)
}

// Params fully determines one generation run: the same Params value always
// yields the same dataset, regardless of worker count.
type Params struct {
	Seed int64

	Customers int
	Merchants int
	Payments  int

	// Transactions are spread over the trailing WindowDays before Now.
	WindowDays int
	Now        time.Time

	// Settlement policy.
	SettlementCycleDays int
	SLADays             int
	BreachProbability   float64

	// Risk policy.
	OutlierFraction    float64
	RiskScoreThreshold float64
	HighValueThreshold float64

	// Workers > 1 parallelizes record production within a stage.
	Workers int
}

// DefaultParams mirrors the documented dataset shape: 500 customers,
// 50 merchants, 5000 payments over a 90 day window.
func DefaultParams(seed int64) Params {
	return Params{
		Seed:                seed,
		Customers:           500,
		Merchants:           50,
		Payments:            5000,
		WindowDays:          90,
		Now:                 time.Now().UTC(),
		SettlementCycleDays: 1,
		SLADays:             2,
		BreachProbability:   0.6,
		OutlierFraction:     0.05,
		RiskScoreThreshold:  70,
		HighValueThreshold:  10000,
		Workers:             1,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Customers <= 0:
		return &ConfigError{Field: "customers", Reason: "must be positive"}
	case p.Customers > MaxCustomers:
		return &ConfigError{Field: "customers", Reason: fmt.Sprintf("exceeds id namespace (max %d)", MaxCustomers)}
	case p.Merchants <= 0:
		return &ConfigError{Field: "merchants", Reason: "must be positive"}
	case p.Merchants > MaxMerchants:
		return &ConfigError{Field: "merchants", Reason: fmt.Sprintf("exceeds id namespace (max %d)", MaxMerchants)}
	case p.Payments <= 0:
		return &ConfigError{Field: "payments", Reason: "must be positive"}
	case p.Payments > MaxPayments:
		return &ConfigError{Field: "payments", Reason: fmt.Sprintf("exceeds id namespace (max %d)", MaxPayments)}
	case p.WindowDays <= 0:
		return &ConfigError{Field: "window_days", Reason: "must be positive"}
	case p.Now.IsZero():
		return &ConfigError{Field: "now", Reason: "reference time is required"}
	case p.SettlementCycleDays <= 0:
		return &ConfigError{Field: "settlement_cycle_days", Reason: "must be positive"}
	case p.SLADays <= 0:
		return &ConfigError{Field: "sla_days", Reason: "must be positive"}
	case p.BreachProbability < 0 || p.BreachProbability > 1:
		return &ConfigError{Field: "breach_probability", Reason: "must be within [0, 1]"}
	case p.OutlierFraction < 0 || p.OutlierFraction > 1:
		return &ConfigError{Field: "outlier_fraction", Reason: "must be within [0, 1]"}
	case p.RiskScoreThreshold < 0 || p.RiskScoreThreshold > 100:
		return &ConfigError{Field: "risk_score_threshold", Reason: "must be within [0, 100]"}
	case p.HighValueThreshold <= 0:
		return &ConfigError{Field: "high_value_threshold", Reason: "must be positive"}
	case p.Workers < 0:
		return &ConfigError{Field: "workers", Reason: "must not be negative"}
	}
	return nil
}

func (p Params) windowStart() time.Time {
	return p.Now.UTC().AddDate(0, 0, -p.WindowDays)
}

func (p Params) workers() int {
	if p.Workers <= 1 {
		return 1
	}
	return p.Workers
}
