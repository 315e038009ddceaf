package mappers

import (
	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
)

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:                payment.ID,
		CustomerID:        payment.CustomerID,
		MerchantID:        payment.MerchantID,
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		PaymentMethod:     payment.PaymentMethod,
		Status:            string(payment.Status),
		TransactionDate:   payment.TransactionDate,
		ProcessingSeconds: payment.ProcessingSeconds,
		FailureReason:     payment.FailureReason,
		RiskScore:         payment.RiskScore,
		Suspicious:        payment.Suspicious,
	}
}

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:                model.ID,
		CustomerID:        model.CustomerID,
		MerchantID:        model.MerchantID,
		Amount:            model.Amount,
		Currency:          model.Currency,
		PaymentMethod:     model.PaymentMethod,
		Status:            domain.PaymentStatus(model.Status),
		TransactionDate:   model.TransactionDate,
		ProcessingSeconds: model.ProcessingSeconds,
		FailureReason:     model.FailureReason,
		RiskScore:         model.RiskScore,
		Suspicious:        model.Suspicious,
	}
}
