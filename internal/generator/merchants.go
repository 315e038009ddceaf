package generator

import (
	"fmt"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

var merchantStatusWeights = []weighted[domain.MerchantStatus]{
	{domain.MerchantActive, 0.85},
	{domain.MerchantInactive, 0.10},
	{domain.MerchantSuspended, 0.05},
}

// GenerateMerchants produces p.Merchants merchant records. Commission rates
// are uniform within [1.5%, 5%], stored as decimal fractions.
func GenerateMerchants(p Params) []*domain.Merchant {
	merchants := make([]*domain.Merchant, p.Merchants)

	parallelFill(p.Merchants, p.workers(), func(i int) {
		rng := recordRand(p.Seed, stageMerchants, i)

		merchants[i] = &domain.Merchant{
			ID:             fmt.Sprintf("MERCH%04d", i+1),
			Name:           pick(rng, companyStems) + " " + pick(rng, companySuffixes),
			BusinessType:   pick(rng, businessTypes),
			Country:        pick(rng, countries),
			CommissionRate: roundTo(0.015+rng.Float64()*(0.05-0.015), 4),
			Status:         pickWeighted(rng, merchantStatusWeights),
		}
	})

	return merchants
}
