package models

import "time"

type SettlementModel struct {
	ID                     string        `gorm:"column:settlement_id;primaryKey"`
	MerchantID             string        `gorm:"index:idx_settlements_merchant"`
	Merchant               MerchantModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	SettlementDate         time.Time
	TotalAmount            float64
	CommissionAmount       float64
	NetAmount              float64
	PaymentCount           int
	Status                 string
	SLABreach              bool `gorm:"column:sla_breach;index:idx_settlements_breach"`
	ExpectedSettlementDate time.Time
}

func (SettlementModel) TableName() string {
	return "settlements"
}
