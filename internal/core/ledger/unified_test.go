package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

func TestUnify(t *testing.T) {
	totals := Unify(UnifiedInputs{
		Opening:        decimal.NewFromInt(500),
		VerifiedIncome: decimal.NewFromInt(1000),
		Expenses:       decimal.NewFromInt(200),
	})

	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(1300)))
}

func TestUnify_ManualEntriesAdjustBothWays(t *testing.T) {
	totals := Unify(UnifiedInputs{
		Opening:        decimal.NewFromInt(100),
		VerifiedIncome: decimal.NewFromInt(400),
		ManualCredits:  decimal.NewFromInt(60),
		Expenses:       decimal.NewFromInt(150),
		ManualDebits:   decimal.NewFromInt(10),
	})

	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(400)))
}

func TestUnify_ZeroStreams(t *testing.T) {
	totals := Unify(UnifiedInputs{})
	assert.True(t, totals.Balance.IsZero())
}

func TestVerifiedCredit(t *testing.T) {
	period := domain.Period{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)}

	withAmount := domain.Payment{Amount: decPtr(decimal.NewFromInt(750))}
	assert.True(t, VerifiedCredit(withAmount, period).Equal(decimal.NewFromInt(750)))

	without := domain.Payment{}
	assert.True(t, VerifiedCredit(without, period).Equal(decimal.NewFromInt(500)))
}
