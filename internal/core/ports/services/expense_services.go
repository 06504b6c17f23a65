package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for society expenses
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesPage retrieves one page of expenses, newest first, and a
	// token for the next page when more rows exist.
	ListExpensesPage(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for society expenses
type ExpenseWriterSvc interface {
	// CreateExpense records a new expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense replaces an expense's editable fields.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
