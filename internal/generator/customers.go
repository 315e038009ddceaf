package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
)

// Email re-rolls before the allocator falls back to a numbered address.
const emailRetryBudget = 5

// GenerateCustomers produces p.Customers uniquely-keyed customer records.
// Credit scores come from a normal distribution clipped to [300, 850]; the
// risk category is always derived from the score, never sampled.
func GenerateCustomers(p Params) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, p.Customers)

	parallelFill(p.Customers, p.workers(), func(i int) {
		rng := recordRand(p.Seed, stageCustomers, i)

		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		score := creditScore(rng)

		// Registered some time in the two years before the window opens.
		registeredAgo := time.Duration(rng.Int63n(int64(730 * 24 * time.Hour)))

		customers[i] = &domain.Customer{
			ID:               fmt.Sprintf("CUST%05d", i+1),
			Name:             first + " " + last,
			Email:            emailFor(first, last, pick(rng, emailDomains)),
			Phone:            fmt.Sprintf("+%d-%03d-%03d-%04d", 1+rng.Intn(98), rng.Intn(1000), rng.Intn(1000), rng.Intn(10000)),
			Country:          pick(rng, countries),
			RegistrationDate: p.windowStart().Add(-registeredAgo),
			CreditScore:      score,
			RiskCategory:     domain.RiskCategoryForScore(score),
		}
	})

	if err := resolveEmailCollisions(p, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// resolveEmailCollisions is the single-writer pass over the email namespace.
// It walks records in index order, so the outcome does not depend on how the
// parallel stage scheduled its workers.
func resolveEmailCollisions(p Params, customers []*domain.Customer) error {
	taken := make(map[string]struct{}, len(customers))
	for i, c := range customers {
		email := c.Email
		if _, dup := taken[email]; dup {
			rng := recordRand(p.Seed, stageEmails, i)
			attempt := 0
			for {
				if attempt >= emailRetryBudget {
					// Numbered fallback: the sequence number is unique per record.
					email = numberedEmail(c.Email, i+1)
					if _, dup := taken[email]; dup {
						return &ConfigError{Field: "customers", Reason: "email namespace exhausted"}
					}
					break
				}
				email = emailFor(pick(rng, firstNames), pick(rng, lastNames), pick(rng, emailDomains))
				if _, dup := taken[email]; !dup {
					break
				}
				attempt++
			}
			c.Email = email
		}
		taken[email] = struct{}{}
	}
	return nil
}

func creditScore(rng *rand.Rand) int {
	score := int(680 + rng.NormFloat64()*90)
	if score < domain.MinCreditScore {
		score = domain.MinCreditScore
	}
	if score > domain.MaxCreditScore {
		score = domain.MaxCreditScore
	}
	return score
}

func emailFor(first, last, domainName string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domainName
}

func numberedEmail(email string, n int) string {
	at := strings.IndexByte(email, '@')
	return fmt.Sprintf("%s%d%s", email[:at], n, email[at:])
}
