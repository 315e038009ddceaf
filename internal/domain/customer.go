package domain

import "time"

type RiskCategory string

const (
	RiskLow    RiskCategory = "LOW"
	RiskMedium RiskCategory = "MEDIUM"
	RiskHigh   RiskCategory = "HIGH"
)

const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

type Customer struct {
	ID               string       `json:"customer_id"`
	Name             string       `json:"customer_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Country          string       `json:"country"`
	RegistrationDate time.Time    `json:"registration_date"`
	CreditScore      int          `json:"credit_score"`
	RiskCategory     RiskCategory `json:"risk_category"`
}

// RiskCategoryForScore maps a credit score to its risk bucket.
// LOW >= 720, MEDIUM 600..719, HIGH < 600.
func RiskCategoryForScore(creditScore int) RiskCategory {
	switch {
	case creditScore >= 720:
		return RiskLow
	case creditScore >= 600:
		return RiskMedium
	default:
		return RiskHigh
	}
}
