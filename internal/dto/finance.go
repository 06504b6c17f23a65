package dto

import (
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// UnifiedTotalsResponse defines the society's lifetime balance view.
type UnifiedTotalsResponse struct {
	Opening        decimal.Decimal `json:"opening"`
	VerifiedIncome decimal.Decimal `json:"verifiedIncome"`
	ManualCredits  decimal.Decimal `json:"manualCredits"`
	Expenses       decimal.Decimal `json:"expenses"`
	ManualDebits   decimal.Decimal `json:"manualDebits"`
	Balance        decimal.Decimal `json:"balance"`
}

// ToUnifiedTotalsResponse converts a domain.UnifiedTotals to UnifiedTotalsResponse DTO.
func ToUnifiedTotalsResponse(t *domain.UnifiedTotals) UnifiedTotalsResponse {
	return UnifiedTotalsResponse{
		Opening:        t.Opening,
		VerifiedIncome: t.VerifiedIncome,
		ManualCredits:  t.ManualCredits,
		Expenses:       t.Expenses,
		ManualDebits:   t.ManualDebits,
		Balance:        t.Balance,
	}
}
