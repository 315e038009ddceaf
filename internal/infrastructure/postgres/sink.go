package postgres

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

// DatasetSink is the postgres implementation of domain.DatasetSink, composed
// from the per-entity repositories. Duplicate primary keys are skipped via
// ON CONFLICT DO NOTHING, so replaying a batch is a no-op.
type DatasetSink struct {
	customers   *repository.DefaultCustomerRepository
	merchants   *repository.DefaultMerchantRepository
	payments    *repository.DefaultPaymentRepository
	settlements *repository.DefaultSettlementRepository
}

func NewDatasetSink(db *gorm.DB) *DatasetSink {
	return &DatasetSink{
		customers:   repository.NewDefaultCustomerRepository(db),
		merchants:   repository.NewDefaultMerchantRepository(db),
		payments:    repository.NewDefaultPaymentRepository(db),
		settlements: repository.NewDefaultSettlementRepository(db),
	}
}

func (s *DatasetSink) LoadCustomers(ctx context.Context, customers []*domain.Customer) (domain.LoadStats, error) {
	return s.customers.BatchInsert(ctx, customers)
}

func (s *DatasetSink) LoadMerchants(ctx context.Context, merchants []*domain.Merchant) (domain.LoadStats, error) {
	return s.merchants.BatchInsert(ctx, merchants)
}

func (s *DatasetSink) LoadPayments(ctx context.Context, payments []*domain.Payment) (domain.LoadStats, error) {
	return s.payments.BatchInsert(ctx, payments)
}

func (s *DatasetSink) LoadSettlements(ctx context.Context, settlements []*domain.Settlement) (domain.LoadStats, error) {
	return s.settlements.BatchInsert(ctx, settlements)
}
