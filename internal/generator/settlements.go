package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

var settlementStatusWeights = []weighted[domain.SettlementStatus]{
	{domain.SettlementCompleted, 0.90},
	{domain.SettlementPending, 0.08},
	{domain.SettlementFailed, 0.02},
}

type settlementKey struct {
	merchantID string
	cycle      int64
}

type settlementAgg struct {
	totalCents   int64
	paymentCount int
	cycleDate    time.Time
}

// GenerateSettlements batches successful payments per merchant per settlement
// cycle. Amount arithmetic runs in integer cents, so
// net = total - commission is exact to the minor unit for every settlement.
// The SLA breach flag is always computed from the two dates, never sampled.
func GenerateSettlements(p Params, ref ReferenceData, payments []*domain.Payment) []*domain.Settlement {
	merchantsByID := make(map[string]*domain.Merchant, len(ref.Merchants))
	for _, m := range ref.Merchants {
		merchantsByID[m.ID] = m
	}

	groups := make(map[settlementKey]*settlementAgg)
	for _, payment := range payments {
		if payment.Status != domain.PaymentSuccess {
			continue
		}
		day := payment.TransactionDate.UTC().Truncate(24 * time.Hour)
		cycle := day.Unix() / (int64(p.SettlementCycleDays) * 86400)
		key := settlementKey{merchantID: payment.MerchantID, cycle: cycle}

		agg, ok := groups[key]
		if !ok {
			agg = &settlementAgg{cycleDate: day}
			groups[key] = agg
		}
		agg.totalCents += toCents(payment.Amount)
		agg.paymentCount++
		if day.After(agg.cycleDate) {
			agg.cycleDate = day
		}
	}

	// Map iteration order is random; settlements get ids in a fixed order.
	keys := make([]settlementKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].merchantID != keys[j].merchantID {
			return keys[i].merchantID < keys[j].merchantID
		}
		return keys[i].cycle < keys[j].cycle
	})

	settlements := make([]*domain.Settlement, 0, len(keys))
	for i, key := range keys {
		agg := groups[key]
		merchant := merchantsByID[key.merchantID]
		rng := recordRand(p.Seed, stageSettlements, i)

		commissionCents := int64(math.Round(float64(agg.totalCents) * merchant.CommissionRate))
		netCents := agg.totalCents - commissionCents

		expected := agg.cycleDate.AddDate(0, 0, p.SLADays)
		actual := agg.cycleDate.AddDate(0, 0, settlementDelayDays(rng, p))

		settlements = append(settlements, &domain.Settlement{
			ID:                     fmt.Sprintf("SETTLE%05d", i+1),
			MerchantID:             key.merchantID,
			SettlementDate:         actual,
			TotalAmount:            fromCents(agg.totalCents),
			CommissionAmount:       fromCents(commissionCents),
			NetAmount:              fromCents(netCents),
			PaymentCount:           agg.paymentCount,
			Status:                 pickWeighted(rng, settlementStatusWeights),
			SLABreach:              actual.After(expected),
			ExpectedSettlementDate: expected,
		})
	}

	return settlements
}

// settlementDelayDays draws the payout delay so that BreachProbability of
// settlements land past the SLA window.
func settlementDelayDays(rng *rand.Rand, p Params) int {
	if rng.Float64() < p.BreachProbability {
		return p.SLADays + 1 + rng.Intn(3)
	}
	return 1 + rng.Intn(p.SLADays)
}
