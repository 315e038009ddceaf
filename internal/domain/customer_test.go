package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskCategoryForScore(t *testing.T) {
	testCases := []struct {
		name     string
		score    int
		expected RiskCategory
	}{
		{name: "top of range", score: MaxCreditScore, expected: RiskLow},
		{name: "low boundary", score: 720, expected: RiskLow},
		{name: "just below low", score: 719, expected: RiskMedium},
		{name: "medium boundary", score: 600, expected: RiskMedium},
		{name: "just below medium", score: 599, expected: RiskHigh},
		{name: "bottom of range", score: MinCreditScore, expected: RiskHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RiskCategoryForScore(tc.score))
		})
	}
}
