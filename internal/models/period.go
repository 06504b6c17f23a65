package models

import "github.com/shopspring/decimal"

// Period represents a row of the dues table.
type Period struct {
	PeriodID string          `db:"period_id"`
	Amount   decimal.Decimal `db:"amount"`
	DueDate  string          `db:"due_date"`
	AuditFields
}
