package generator

import (
	"testing"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReferenceData(t *testing.T, p Params) ReferenceData {
	t.Helper()
	customers, err := GenerateCustomers(p)
	require.NoError(t, err)
	return ReferenceData{
		Customers: customers,
		Merchants: GenerateMerchants(p),
	}
}

func TestGeneratePaymentsReferentialIntegrity(t *testing.T) {
	p := testParams()
	ref := testReferenceData(t, p)

	payments := GeneratePayments(p, ref)
	require.Len(t, payments, p.Payments)

	customerIDs := make(map[string]struct{}, len(ref.Customers))
	for _, c := range ref.Customers {
		customerIDs[c.ID] = struct{}{}
	}
	merchantIDs := make(map[string]struct{}, len(ref.Merchants))
	for _, m := range ref.Merchants {
		merchantIDs[m.ID] = struct{}{}
	}

	for _, payment := range payments {
		_, ok := customerIDs[payment.CustomerID]
		assert.True(t, ok, "payment %s references unknown customer %s", payment.ID, payment.CustomerID)
		_, ok = merchantIDs[payment.MerchantID]
		assert.True(t, ok, "payment %s references unknown merchant %s", payment.ID, payment.MerchantID)
	}
}

func TestGeneratePaymentsFailureReason(t *testing.T) {
	p := testParams()
	ref := testReferenceData(t, p)

	var failed int
	for _, payment := range GeneratePayments(p, ref) {
		if payment.Status == domain.PaymentFailed {
			failed++
			require.NotNil(t, payment.FailureReason, "failed payment %s has no reason", payment.ID)
			assert.NotEmpty(t, *payment.FailureReason)
		} else {
			assert.Nil(t, payment.FailureReason,
				"payment %s with status %s carries a failure reason", payment.ID, payment.Status)
		}
	}
	require.Positive(t, failed, "expected at least one failed payment in 5000")
}

func TestGeneratePaymentsSuspiciousFlag(t *testing.T) {
	p := testParams()
	ref := testReferenceData(t, p)

	var suspicious int
	for _, payment := range GeneratePayments(p, ref) {
		expected := payment.RiskScore > p.RiskScoreThreshold || payment.Amount > p.HighValueThreshold
		assert.Equal(t, expected, payment.Suspicious, "payment %s", payment.ID)
		if payment.Suspicious {
			suspicious++
		}
	}
	require.Positive(t, suspicious)
}

func TestGeneratePaymentsAmountAndTiming(t *testing.T) {
	p := testParams()
	ref := testReferenceData(t, p)

	windowStart := p.windowStart()
	windowEnd := windowStart.Add(time.Duration(p.WindowDays) * 24 * time.Hour)

	var outliers int
	for _, payment := range GeneratePayments(p, ref) {
		if payment.Amount > 2000 {
			outliers++
			assert.GreaterOrEqual(t, payment.Amount, 5000.0)
			assert.LessOrEqual(t, payment.Amount, 50000.0)
		} else {
			assert.GreaterOrEqual(t, payment.Amount, 10.0)
		}

		assert.Equal(t, "USD", payment.Currency)
		assert.False(t, payment.TransactionDate.Before(windowStart))
		assert.True(t, payment.TransactionDate.Before(windowEnd))

		assert.GreaterOrEqual(t, payment.RiskScore, 0.0)
		assert.LessOrEqual(t, payment.RiskScore, 100.0)

		switch payment.Status {
		case domain.PaymentFailed, domain.PaymentPending:
			assert.InDelta(t, 60.5, float64(payment.ProcessingSeconds), 60.5)
		default:
			assert.InDelta(t, 15.5, float64(payment.ProcessingSeconds), 15.5)
		}
	}

	// ~5% outlier share; wide tolerance to stay robust across seeds.
	assert.InDelta(t, float64(p.Payments)*p.OutlierFraction, float64(outliers), float64(p.Payments)*0.03)
}

func TestGeneratePaymentsSuccessRateByRisk(t *testing.T) {
	p := testParams()
	ref := testReferenceData(t, p)

	riskByCustomer := make(map[string]domain.RiskCategory, len(ref.Customers))
	for _, c := range ref.Customers {
		riskByCustomer[c.ID] = c.RiskCategory
	}

	total := make(map[domain.RiskCategory]int)
	success := make(map[domain.RiskCategory]int)
	for _, payment := range GeneratePayments(p, ref) {
		risk := riskByCustomer[payment.CustomerID]
		total[risk]++
		if payment.Status == domain.PaymentSuccess {
			success[risk]++
		}
	}

	rate := func(risk domain.RiskCategory) float64 {
		require.Positive(t, total[risk], "no payments for %s customers", risk)
		return float64(success[risk]) / float64(total[risk])
	}

	low, medium, high := rate(domain.RiskLow), rate(domain.RiskMedium), rate(domain.RiskHigh)
	assert.Greater(t, low, medium, "LOW success rate must exceed MEDIUM")
	assert.Greater(t, medium, high, "MEDIUM success rate must exceed HIGH")
}
