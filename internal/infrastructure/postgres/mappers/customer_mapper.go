package mappers

import (
	"github.com/finwatch/payments-analytics-service/internal/domain"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
)

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:               customer.ID,
		Name:             customer.Name,
		Email:            customer.Email,
		Phone:            customer.Phone,
		Country:          customer.Country,
		RegistrationDate: customer.RegistrationDate,
		CreditScore:      customer.CreditScore,
		RiskCategory:     string(customer.RiskCategory),
	}
}

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:               model.ID,
		Name:             model.Name,
		Email:            model.Email,
		Phone:            model.Phone,
		Country:          model.Country,
		RegistrationDate: model.RegistrationDate,
		CreditScore:      model.CreditScore,
		RiskCategory:     domain.RiskCategory(model.RiskCategory),
	}
}
