package repository

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/mappers"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 500

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

// BatchInsert writes customers with insert-if-absent semantics: rows whose
// primary key already exists are skipped, never overwritten.
func (r *DefaultCustomerRepository) BatchInsert(ctx context.Context, customers []*domain.Customer) (domain.LoadStats, error) {
	customerModels := make([]models.CustomerModel, len(customers))
	for i, customer := range customers {
		customerModels[i] = *mappers.ToGORMCustomer(customer)
	}

	tx := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&customerModels, insertBatchSize)
	if tx.Error != nil {
		return domain.LoadStats{}, tx.Error
	}

	attempted := int64(len(customers))
	return domain.LoadStats{
		Attempted: attempted,
		Inserted:  tx.RowsAffected,
		Skipped:   attempted - tx.RowsAffected,
	}, nil
}

func (r *DefaultCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.CustomerModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
