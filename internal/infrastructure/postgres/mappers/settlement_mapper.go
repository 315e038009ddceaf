package mappers

import (
	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
)

func ToGORMSettlement(settlement *domain.Settlement) *models.SettlementModel {
	return &models.SettlementModel{
		ID:                     settlement.ID,
		MerchantID:             settlement.MerchantID,
		SettlementDate:         settlement.SettlementDate,
		TotalAmount:            settlement.TotalAmount,
		CommissionAmount:       settlement.CommissionAmount,
		NetAmount:              settlement.NetAmount,
		PaymentCount:           settlement.PaymentCount,
		Status:                 string(settlement.Status),
		SLABreach:              settlement.SLABreach,
		ExpectedSettlementDate: settlement.ExpectedSettlementDate,
	}
}

func ToDomainSettlement(model *models.SettlementModel) *domain.Settlement {
	return &domain.Settlement{
		ID:                     model.ID,
		MerchantID:             model.MerchantID,
		SettlementDate:         model.SettlementDate,
		TotalAmount:            model.TotalAmount,
		CommissionAmount:       model.CommissionAmount,
		NetAmount:              model.NetAmount,
		PaymentCount:           model.PaymentCount,
		Status:                 domain.SettlementStatus(model.Status),
		SLABreach:              model.SLABreach,
		ExpectedSettlementDate: model.ExpectedSettlementDate,
	}
}
