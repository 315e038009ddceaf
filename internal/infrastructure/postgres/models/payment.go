package models

import "time"

type PaymentModel struct {
	ID                string        `gorm:"column:payment_id;primaryKey"`
	CustomerID        string        `gorm:"index:idx_payments_customer"`
	Customer          CustomerModel `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	MerchantID        string        `gorm:"index:idx_payments_merchant"`
	Merchant          MerchantModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Amount            float64       `gorm:"index:idx_payments_amount"`
	Currency          string
	PaymentMethod     string
	Status            string    `gorm:"column:payment_status;index:idx_payments_status"`
	TransactionDate   time.Time `gorm:"index:idx_payments_tx_date"`
	ProcessingSeconds int       `gorm:"column:processing_time_seconds"`
	FailureReason     *string
	RiskScore         float64 `gorm:"index:idx_payments_risk"`
	Suspicious        bool    `gorm:"column:is_suspicious"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
