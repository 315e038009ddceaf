package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	p := DefaultParams(42)
	p.Now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	return p
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, testParams().Validate())

	testCases := []struct {
		name     string
		mutate   func(*Params)
		field    string
	}{
		{"zero customers", func(p *Params) { p.Customers = 0 }, "customers"},
		{"customers over namespace", func(p *Params) { p.Customers = MaxCustomers + 1 }, "customers"},
		{"negative merchants", func(p *Params) { p.Merchants = -1 }, "merchants"},
		{"merchants over namespace", func(p *Params) { p.Merchants = MaxMerchants + 1 }, "merchants"},
		{"zero payments", func(p *Params) { p.Payments = 0 }, "payments"},
		{"payments over namespace", func(p *Params) { p.Payments = MaxPayments + 1 }, "payments"},
		{"zero window", func(p *Params) { p.WindowDays = 0 }, "window_days"},
		{"zero reference time", func(p *Params) { p.Now = time.Time{} }, "now"},
		{"zero settlement cycle", func(p *Params) { p.SettlementCycleDays = 0 }, "settlement_cycle_days"},
		{"zero sla days", func(p *Params) { p.SLADays = 0 }, "sla_days"},
		{"breach probability above one", func(p *Params) { p.BreachProbability = 1.5 }, "breach_probability"},
		{"negative outlier fraction", func(p *Params) { p.OutlierFraction = -0.1 }, "outlier_fraction"},
		{"risk threshold above range", func(p *Params) { p.RiskScoreThreshold = 101 }, "risk_score_threshold"},
		{"zero high value threshold", func(p *Params) { p.HighValueThreshold = 0 }, "high_value_threshold"},
		{"negative workers", func(p *Params) { p.Workers = -1 }, "workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.mutate(&p)

			err := p.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}
