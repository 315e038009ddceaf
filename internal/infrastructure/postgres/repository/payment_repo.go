package repository

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/mappers"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) BatchInsert(ctx context.Context, payments []*domain.Payment) (domain.LoadStats, error) {
	paymentModels := make([]models.PaymentModel, len(payments))
	for i, payment := range payments {
		paymentModels[i] = *mappers.ToGORMPayment(payment)
	}

	tx := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&paymentModels, insertBatchSize)
	if tx.Error != nil {
		return domain.LoadStats{}, tx.Error
	}

	attempted := int64(len(payments))
	return domain.LoadStats{
		Attempted: attempted,
		Inserted:  tx.RowsAffected,
		Skipped:   attempted - tx.RowsAffected,
	}, nil
}

func (r *DefaultPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.PaymentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
