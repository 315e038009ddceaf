package repository

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/mappers"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) BatchInsert(ctx context.Context, merchants []*domain.Merchant) (domain.LoadStats, error) {
	merchantModels := make([]models.MerchantModel, len(merchants))
	for i, merchant := range merchants {
		merchantModels[i] = *mappers.ToGORMMerchant(merchant)
	}

	tx := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&merchantModels, insertBatchSize)
	if tx.Error != nil {
		return domain.LoadStats{}, tx.Error
	}

	attempted := int64(len(merchants))
	return domain.LoadStats{
		Attempted: attempted,
		Inserted:  tx.RowsAffected,
		Skipped:   attempted - tx.RowsAffected,
	}, nil
}

func (r *DefaultMerchantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.MerchantModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
