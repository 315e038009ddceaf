package domain

type MerchantStatus string

const (
	MerchantActive    MerchantStatus = "ACTIVE"
	MerchantInactive  MerchantStatus = "INACTIVE"
	MerchantSuspended MerchantStatus = "SUSPENDED"
)

type Merchant struct {
	ID             string         `json:"merchant_id"`
	Name           string         `json:"merchant_name"`
	BusinessType   string         `json:"business_type"`
	Country        string         `json:"country"`
	CommissionRate float64        `json:"commission_rate"`
	Status         MerchantStatus `json:"status"`
}
