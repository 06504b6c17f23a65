package repositories

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// ExpenseReader defines read operations for society expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses ordered by date descending.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListExpensesPage retrieves one page of expenses, newest first, using
	// token-based pagination. It returns the page and a token for the next
	// page when more rows exist.
	ListExpensesPage(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)

	// ListExpensesByDatePrefix retrieves expenses whose date starts with
	// the given prefix, typically a "YYYY-MM" period id.
	ListExpensesByDatePrefix(ctx context.Context, prefix string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for society expenses
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces an existing expense's editable fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
