package domain

import "github.com/shopspring/decimal"

// Period represents one accounting month of the society, identified by a
// "YYYY-MM" string. The identifier sorts lexicographically in chronological
// order, which the ledger relies on. Periods are created once by an admin
// and never mutated afterwards.
type Period struct {
	PeriodID string          `json:"periodID"` // "YYYY-MM", primary key
	Amount   decimal.Decimal `json:"amount"`   // fixed maintenance due for the month
	DueDate  string          `json:"dueDate"`  // "YYYY-MM-DD"
	AuditFields
}

// ContainsDate reports whether an ISO calendar date falls inside the period.
// Bucketing is a plain string-prefix match against the period id.
func (p Period) ContainsDate(isoDate string) bool {
	return len(isoDate) >= len(p.PeriodID) && isoDate[:len(p.PeriodID)] == p.PeriodID
}
