package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkIdempotentReload(t *testing.T) {
	p := generator.DefaultParams(42)
	p.Now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	p.Customers = 50
	p.Merchants = 10
	p.Payments = 200

	dataset, err := generator.Generate(p)
	require.NoError(t, err)

	sink := NewSink()
	ctx := context.Background()

	load := func() []domain.LoadStats {
		var all []domain.LoadStats
		stats, err := sink.LoadCustomers(ctx, dataset.Customers)
		require.NoError(t, err)
		all = append(all, stats)
		stats, err = sink.LoadMerchants(ctx, dataset.Merchants)
		require.NoError(t, err)
		all = append(all, stats)
		stats, err = sink.LoadPayments(ctx, dataset.Payments)
		require.NoError(t, err)
		all = append(all, stats)
		stats, err = sink.LoadSettlements(ctx, dataset.Settlements)
		require.NoError(t, err)
		return append(all, stats)
	}

	// First load inserts everything.
	for _, stats := range load() {
		assert.Equal(t, stats.Attempted, stats.Inserted)
		assert.Zero(t, stats.Skipped)
	}

	// Reloading the same dataset inserts nothing.
	for _, stats := range load() {
		assert.Equal(t, stats.Attempted, stats.Skipped)
		assert.Zero(t, stats.Inserted)
	}

	customers, merchants, payments, settlements := sink.Counts()
	assert.Equal(t, p.Customers, customers)
	assert.Equal(t, p.Merchants, merchants)
	assert.Equal(t, p.Payments, payments)
	assert.Equal(t, len(dataset.Settlements), settlements)
}
