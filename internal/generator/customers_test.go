package generator

import (
	"testing"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCustomersUniqueness(t *testing.T) {
	p := testParams()

	customers, err := GenerateCustomers(p)
	require.NoError(t, err)
	require.Len(t, customers, p.Customers)

	ids := make(map[string]struct{}, len(customers))
	emails := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		_, dupID := ids[c.ID]
		assert.False(t, dupID, "duplicate customer id %s", c.ID)
		ids[c.ID] = struct{}{}

		_, dupEmail := emails[c.Email]
		assert.False(t, dupEmail, "duplicate email %s", c.Email)
		emails[c.Email] = struct{}{}
	}

	assert.Equal(t, "CUST00001", customers[0].ID)
	assert.Equal(t, "CUST00500", customers[len(customers)-1].ID)
}

func TestGenerateCustomersFieldInvariants(t *testing.T) {
	p := testParams()

	customers, err := GenerateCustomers(p)
	require.NoError(t, err)

	windowStart := p.windowStart()
	for _, c := range customers {
		assert.GreaterOrEqual(t, c.CreditScore, domain.MinCreditScore)
		assert.LessOrEqual(t, c.CreditScore, domain.MaxCreditScore)
		assert.Equal(t, domain.RiskCategoryForScore(c.CreditScore), c.RiskCategory,
			"risk category must be derived from the credit score")
		assert.False(t, c.RegistrationDate.After(windowStart),
			"customer %s registered inside the transaction window", c.ID)
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, c.Email, "@")
	}
}

func TestGenerateCustomersDeterministic(t *testing.T) {
	p := testParams()

	first, err := GenerateCustomers(p)
	require.NoError(t, err)
	second, err := GenerateCustomers(p)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateCustomersSeedSensitivity(t *testing.T) {
	a := testParams()
	b := testParams()
	b.Seed = a.Seed + 1

	first, err := GenerateCustomers(a)
	require.NoError(t, err)
	second, err := GenerateCustomers(b)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
