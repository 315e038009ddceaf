package repository

import (
	"context"

	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/mappers"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSettlementRepository struct {
	DB *gorm.DB
}

func NewDefaultSettlementRepository(db *gorm.DB) *DefaultSettlementRepository {
	return &DefaultSettlementRepository{DB: db}
}

func (r *DefaultSettlementRepository) BatchInsert(ctx context.Context, settlements []*domain.Settlement) (domain.LoadStats, error) {
	settlementModels := make([]models.SettlementModel, len(settlements))
	for i, settlement := range settlements {
		settlementModels[i] = *mappers.ToGORMSettlement(settlement)
	}

	tx := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&settlementModels, insertBatchSize)
	if tx.Error != nil {
		return domain.LoadStats{}, tx.Error
	}

	attempted := int64(len(settlements))
	return domain.LoadStats{
		Attempted: attempted,
		Inserted:  tx.RowsAffected,
		Skipped:   attempted - tx.RowsAffected,
	}, nil
}

func (r *DefaultSettlementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.SettlementModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
