package domain

import "context"

// Dataset is one complete, internally consistent generation batch.
// Slices are ordered and replayable: loading the same dataset twice must be
// a no-op for the second pass.
type Dataset struct {
	Customers   []*Customer
	Merchants   []*Merchant
	Payments    []*Payment
	Settlements []*Settlement
}

// LoadStats reports the outcome of one batch insert. Skipped rows are
// duplicates rejected by insert-if-absent conflict handling.
type LoadStats struct {
	Attempted int64 `json:"attempted"`
	Inserted  int64 `json:"inserted"`
	Skipped   int64 `json:"skipped"`
}

// DatasetSink persists generated batches with idempotent conflict handling.
// Callers must load in dependency order: customers and merchants before
// payments, payments before settlements.
type DatasetSink interface {
	LoadCustomers(ctx context.Context, customers []*Customer) (LoadStats, error)
	LoadMerchants(ctx context.Context, merchants []*Merchant) (LoadStats, error)
	LoadPayments(ctx context.Context, payments []*Payment) (LoadStats, error)
	LoadSettlements(ctx context.Context, settlements []*Settlement) (LoadStats, error)
}
