package domain

import "github.com/shopspring/decimal"

// Expense is a dated, categorized society outflow recorded by an admin.
// All fields except the identifier are editable.
type Expense struct {
	ExpenseID string          `json:"expenseID"`
	Date      string          `json:"date"` // "YYYY-MM-DD"
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	InstNo    string          `json:"instNo,omitempty"`
	AuditFields
}
