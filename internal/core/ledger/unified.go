package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// UnifiedInputs carries the lifetime aggregates for the society-wide
// balance. The service layer sums each stream across all periods; a
// stream it failed to fetch is passed as zero so the remaining numbers
// still render.
type UnifiedInputs struct {
	// Opening is the opening balance of the earliest period on record.
	// Later openings are running-balance snapshots, not fresh capital,
	// and must not be counted again.
	Opening        decimal.Decimal
	VerifiedIncome decimal.Decimal
	ManualCredits  decimal.Decimal
	Expenses       decimal.Decimal
	ManualDebits   decimal.Decimal
}

// Unify folds the lifetime streams into the society's current balance.
func Unify(in UnifiedInputs) domain.UnifiedTotals {
	balance := in.Opening.
		Add(in.VerifiedIncome).
		Add(in.ManualCredits).
		Sub(in.Expenses).
		Sub(in.ManualDebits)
	return domain.UnifiedTotals{
		Opening:        in.Opening,
		VerifiedIncome: in.VerifiedIncome,
		ManualCredits:  in.ManualCredits,
		Expenses:       in.Expenses,
		ManualDebits:   in.ManualDebits,
		Balance:        balance,
	}
}

// VerifiedCredit resolves the amount a verified payment contributes,
// falling back to the period's due amount when the record carries none.
func VerifiedCredit(p domain.Payment, period domain.Period) decimal.Decimal {
	if p.Amount != nil {
		return *p.Amount
	}
	return period.Amount
}
