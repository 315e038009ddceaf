package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

// Payment outcome weights per customer risk category, over
// SUCCESS / FAILED / PENDING / REFUNDED. Success probability must stay
// strictly monotonic: LOW > MEDIUM > HIGH.
var statusWeightsByRisk = map[domain.RiskCategory][]weighted[domain.PaymentStatus]{
	domain.RiskLow: {
		{domain.PaymentSuccess, 0.95},
		{domain.PaymentFailed, 0.03},
		{domain.PaymentPending, 0.015},
		{domain.PaymentRefunded, 0.005},
	},
	domain.RiskMedium: {
		{domain.PaymentSuccess, 0.85},
		{domain.PaymentFailed, 0.10},
		{domain.PaymentPending, 0.04},
		{domain.PaymentRefunded, 0.01},
	},
	domain.RiskHigh: {
		{domain.PaymentSuccess, 0.65},
		{domain.PaymentFailed, 0.25},
		{domain.PaymentPending, 0.08},
		{domain.PaymentRefunded, 0.02},
	},
}

// GeneratePayments produces p.Payments transactions across the historical
// window, referencing the given reference data by id. Outcome probabilities
// are conditioned on the owning customer's risk category, and ~5% of amounts
// come from a separate high-value distribution to seed genuine outliers.
func GeneratePayments(p Params, ref ReferenceData) []*domain.Payment {
	payments := make([]*domain.Payment, p.Payments)
	windowStart := p.windowStart()

	parallelFill(p.Payments, p.workers(), func(i int) {
		rng := recordRand(p.Seed, stagePayments, i)

		customer := ref.Customers[rng.Intn(len(ref.Customers))]
		merchant := ref.Merchants[rng.Intn(len(ref.Merchants))]

		status := pickWeighted(rng, statusWeightsByRisk[customer.RiskCategory])
		amount := sampleAmount(rng, p.OutlierFraction)
		score := riskScore(rng, amount, customer.RiskCategory)

		var failureReason *string
		if status == domain.PaymentFailed {
			reason := pick(rng, failureReasons)
			failureReason = &reason
		}

		txDate := windowStart.Add(
			time.Duration(rng.Intn(p.WindowDays))*24*time.Hour +
				time.Duration(rng.Intn(24))*time.Hour +
				time.Duration(rng.Intn(60))*time.Minute)

		payments[i] = &domain.Payment{
			ID:                fmt.Sprintf("PAY%06d", i+1),
			CustomerID:        customer.ID,
			MerchantID:        merchant.ID,
			Amount:            amount,
			Currency:          "USD",
			PaymentMethod:     pick(rng, paymentMethods),
			Status:            status,
			TransactionDate:   txDate,
			ProcessingSeconds: processingSeconds(rng, status),
			FailureReason:     failureReason,
			RiskScore:         score,
			Suspicious:        score > p.RiskScoreThreshold || amount > p.HighValueThreshold,
		}
	})

	return payments
}

func sampleAmount(rng *rand.Rand, outlierFraction float64) float64 {
	if rng.Float64() < outlierFraction {
		return round2(5000 + rng.Float64()*45000)
	}
	return round2(10 + rng.Float64()*1990)
}

// riskScore starts from a uniform base and is bumped for high amounts and
// high-risk customers, clamped to 100. A HIGH-risk customer with an outlier
// amount therefore lands near the top of the range.
func riskScore(rng *rand.Rand, amount float64, risk domain.RiskCategory) float64 {
	score := rng.Float64() * 100
	if amount > 5000 {
		score += 30
	}
	if risk == domain.RiskHigh {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return round2(score)
}

// processingSeconds allows wider variance for FAILED and PENDING outcomes.
func processingSeconds(rng *rand.Rand, status domain.PaymentStatus) int {
	switch status {
	case domain.PaymentFailed, domain.PaymentPending:
		return 1 + rng.Intn(120)
	default:
		return 1 + rng.Intn(30)
	}
}
