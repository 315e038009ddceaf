package models

type MerchantModel struct {
	ID             string `gorm:"column:merchant_id;primaryKey"`
	Name           string `gorm:"column:merchant_name"`
	BusinessType   string
	Country        string
	CommissionRate float64
	Status         string
}

func (MerchantModel) TableName() string {
	return "merchants"
}
