package redis

import "fmt"

const AnalyticsKeyPattern = "analytics:*"

func PaymentAnalyticsKey(limit int) string {
	return fmt.Sprintf("analytics:payment_analytics:%d", limit)
}

func MerchantPerformanceKey() string {
	return "analytics:merchant_performance"
}

func CustomerInsightsKey(limit int) string {
	return fmt.Sprintf("analytics:customer_insights:%d", limit)
}
