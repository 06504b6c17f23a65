package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Title    string          `json:"title" binding:"required"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes,omitempty"`
	Mode     string          `json:"mode,omitempty"`
	InstNo   string          `json:"instNo,omitempty"`
}

// UpdateExpenseRequest defines the editable fields of an expense.
type UpdateExpenseRequest struct {
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Title    string          `json:"title" binding:"required"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes,omitempty"`
	Mode     string          `json:"mode,omitempty"`
	InstNo   string          `json:"instNo,omitempty"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID string          `json:"expenseID"`
	Date      string          `json:"date"`
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	InstNo    string          `json:"instNo,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: e.ExpenseID,
		Date:      e.Date,
		Title:     e.Title,
		Category:  e.Category,
		Amount:    e.Amount,
		Notes:     e.Notes,
		Mode:      e.Mode,
		InstNo:    e.InstNo,
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}

// ListExpensesResponse defines one page of expenses plus the token for the
// next page, nil when no more rows exist.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpenseResponse converts a slice of domain.Expense to a slice of ExpenseResponse DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
