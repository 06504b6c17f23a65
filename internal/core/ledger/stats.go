package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// Stats computes the collection snapshot for one period. flatCount is
// the size of the resident roster; when the roster is empty the payment
// records themselves stand in as the expected population.
func Stats(period domain.Period, payments []domain.Payment, flatCount int) domain.PeriodStats {
	paid := 0
	verified := 0
	collected := decimal.Zero
	for _, p := range payments {
		if p.Paid {
			paid++
		}
		if p.Paid && p.Verified {
			verified++
			collected = collected.Add(VerifiedCredit(p, period))
		}
	}
	expected := flatCount
	if expected == 0 {
		expected = len(payments)
	}
	pending := expected - paid
	if pending < 0 {
		pending = 0
	}
	return domain.PeriodStats{
		PeriodID:  period.PeriodID,
		Expected:  expected,
		Paid:      paid,
		Verified:  verified,
		Pending:   pending,
		Collected: collected,
	}
}
