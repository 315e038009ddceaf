package models

import "time"

type CustomerModel struct {
	ID               string `gorm:"column:customer_id;primaryKey"`
	Name             string `gorm:"column:customer_name"`
	Email            string `gorm:"uniqueIndex"`
	Phone            string
	Country          string
	RegistrationDate time.Time
	CreditScore      int
	RiskCategory     string `gorm:"index:idx_customers_risk"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
