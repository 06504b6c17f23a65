package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

func TestStats(t *testing.T) {
	period := domain.Period{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)}
	payments := []domain.Payment{
		{FlatNo: "A-101", Paid: true, Verified: true},
		{FlatNo: "A-102", Paid: true, Verified: true, Amount: decPtr(decimal.NewFromInt(750))},
		{FlatNo: "A-103", Paid: true, Verified: false},
		{FlatNo: "A-104", Paid: false},
	}

	stats := Stats(period, payments, 10)

	assert.Equal(t, 10, stats.Expected)
	assert.Equal(t, 3, stats.Paid)
	assert.Equal(t, 2, stats.Verified)
	assert.Equal(t, 7, stats.Pending)
	assert.True(t, stats.Collected.Equal(decimal.NewFromInt(1250)))
}

func TestStats_RosterFallback(t *testing.T) {
	period := domain.Period{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)}
	payments := []domain.Payment{
		{FlatNo: "A-101", Paid: true, Verified: true},
		{FlatNo: "A-102", Paid: false},
	}

	stats := Stats(period, payments, 0)

	assert.Equal(t, 2, stats.Expected, "payment records stand in for an empty roster")
	assert.Equal(t, 1, stats.Pending)
}

func TestStats_PendingNeverNegative(t *testing.T) {
	period := domain.Period{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)}
	payments := []domain.Payment{
		{FlatNo: "A-101", Paid: true, Verified: true},
		{FlatNo: "A-102", Paid: true, Verified: true},
	}

	stats := Stats(period, payments, 1)

	assert.Equal(t, 0, stats.Pending)
}
