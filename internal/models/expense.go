package models

import "github.com/shopspring/decimal"

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID string          `db:"expense_id"`
	Date      string          `db:"expense_date"`
	Title     string          `db:"title"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Notes     string          `db:"notes"`
	Mode      string          `db:"mode"`
	InstNo    string          `db:"inst_no"`
	AuditFields
}
