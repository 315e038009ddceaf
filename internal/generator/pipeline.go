package generator

import "github.com/finwatch/payments-analytics-service/internal/domain"

// ReferenceData is the output of the entity stage and the required input of
// the transaction stage, which makes the dependency order (customers and
// merchants before payments, payments before settlements) a type-level
// contract instead of a convention.
type ReferenceData struct {
	Customers []*domain.Customer
	Merchants []*domain.Merchant
}

// Generate runs the full pipeline: reference entities, then payments, then
// settlements. It is a pure function of Params; it performs no I/O and either
// returns a complete, internally consistent dataset or fails before producing
// any output.
func Generate(p Params) (*domain.Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	customers, err := GenerateCustomers(p)
	if err != nil {
		return nil, err
	}

	ref := ReferenceData{
		Customers: customers,
		Merchants: GenerateMerchants(p),
	}
	payments := GeneratePayments(p, ref)
	settlements := GenerateSettlements(p, ref, payments)

	return &domain.Dataset{
		Customers:   ref.Customers,
		Merchants:   ref.Merchants,
		Payments:    payments,
		Settlements: settlements,
	}, nil
}
