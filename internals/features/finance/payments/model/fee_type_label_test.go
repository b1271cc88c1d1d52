// file: internals/features/finance/payments/model/fee_type_label_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeTypeLabel(t *testing.T) {
	assert.Equal(t, "2024-2025 - Tuition Fee", FeeTypeLabel("2024-2025", "Tuition Fee"))
}

func TestFeeTypeMatchesYear(t *testing.T) {
	assert.True(t, FeeTypeMatchesYear("2024-2025 - Tuition Fee", "2024-2025"))
	assert.False(t, FeeTypeMatchesYear("2023-2024 - Tuition Fee", "2024-2025"))
	// a bare year without the separator is not attributable
	assert.False(t, FeeTypeMatchesYear("2024-2025", "2024-2025"))
}

func TestPaymentMatchesYearPrefersExplicitKey(t *testing.T) {
	year := "2024-2025"
	p := PaymentModel{
		PaymentFeeType:   "2023-2024 - Tuition Fee", // stale display label
		PaymentYearLabel: &year,
	}
	assert.True(t, p.MatchesYear("2024-2025"))
	assert.False(t, p.MatchesYear("2023-2024"))
}

func TestPaymentMatchesYearFallsBackToLabel(t *testing.T) {
	p := PaymentModel{PaymentFeeType: "2024-2025 - Bus Fee"}
	assert.True(t, p.MatchesYear("2024-2025"))
	assert.False(t, p.MatchesYear("2025-2026"))
}

func TestPaymentMatchesItem(t *testing.T) {
	year, itemID := "2024-2025", "bus"
	keyed := PaymentModel{
		PaymentFeeType:   "whatever",
		PaymentYearLabel: &year,
		PaymentFeeItemID: &itemID,
	}
	assert.True(t, keyed.MatchesItem("2024-2025", "bus", "Bus Fee"))
	assert.False(t, keyed.MatchesItem("2024-2025", "tuition", "Tuition Fee"))

	legacy := PaymentModel{PaymentFeeType: "2024-2025 - Bus Fee"}
	assert.True(t, legacy.MatchesItem("2024-2025", "bus", "Bus Fee"))
	assert.False(t, legacy.MatchesItem("2024-2025", "bus", "Van Fee"))
}
