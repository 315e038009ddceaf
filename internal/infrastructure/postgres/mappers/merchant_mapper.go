package mappers

import (
	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
)

func ToGORMMerchant(merchant *domain.Merchant) *models.MerchantModel {
	return &models.MerchantModel{
		ID:             merchant.ID,
		Name:           merchant.Name,
		BusinessType:   merchant.BusinessType,
		Country:        merchant.Country,
		CommissionRate: merchant.CommissionRate,
		Status:         string(merchant.Status),
	}
}

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID:             model.ID,
		Name:           model.Name,
		BusinessType:   model.BusinessType,
		Country:        model.Country,
		CommissionRate: model.CommissionRate,
		Status:         domain.MerchantStatus(model.Status),
	}
}
