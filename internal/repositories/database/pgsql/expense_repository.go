package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
	"github.com/urmilakunj/society_backend/internal/utils/pagination"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for society expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, expense_date, title, category, amount, notes, mode, inst_no, created_at, created_by, last_updated_at, last_updated_by`

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, expense_date, title, category, amount, notes, mode, inst_no, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Date,
		modelExpense.Title,
		modelExpense.Category,
		modelExpense.Amount,
		modelExpense.Notes,
		modelExpense.Mode,
		modelExpense.InstNo,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", modelExpense.ExpenseID, err)
	}
	return nil
}

// UpdateExpense replaces an existing expense's editable fields.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses SET
			expense_date = $2,
			title = $3,
			category = $4,
			amount = $5,
			notes = $6,
			mode = $7,
			inst_no = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE expense_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Date,
		modelExpense.Title,
		modelExpense.Category,
		modelExpense.Amount,
		modelExpense.Notes,
		modelExpense.Mode,
		modelExpense.InstNo,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", modelExpense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExpenseByID retrieves a specific expense.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	var modelExpense models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&modelExpense.ExpenseID,
		&modelExpense.Date,
		&modelExpense.Title,
		&modelExpense.Category,
		&modelExpense.Amount,
		&modelExpense.Notes,
		&modelExpense.Mode,
		&modelExpense.InstNo,
		&modelExpense.CreatedAt,
		&modelExpense.CreatedBy,
		&modelExpense.LastUpdatedAt,
		&modelExpense.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var expense models.Expense
		err := row.Scan(
			&expense.ExpenseID,
			&expense.Date,
			&expense.Title,
			&expense.Category,
			&expense.Amount,
			&expense.Notes,
			&expense.Mode,
			&expense.InstNo,
			&expense.CreatedAt,
			&expense.CreatedBy,
			&expense.LastUpdatedAt,
			&expense.LastUpdatedBy,
		)
		return expense, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// ListExpenses retrieves all expenses ordered by date descending.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date DESC, expense_id;`
	return r.queryExpenses(ctx, query)
}

// ListExpensesPage retrieves one page of expenses using token-based
// pagination. It returns the page, a token for the next page, and an error.
func (r *PgxExpenseRepository) ListExpensesPage(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses`
	// Ordering must be stable; expense_id breaks date ties.
	orderByClause := `ORDER BY expense_date DESC, expense_id DESC`

	var (
		query string
		args  []any
	)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeExpenseToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, decodeErr.Error())
		}
		query = baseQuery + ` WHERE (expense_date, expense_id) < ($1, $2) ` + orderByClause + ` LIMIT $3;`
		args = []any{lastDate, lastID, fetchLimit}
	} else {
		query = baseQuery + ` ` + orderByClause + ` LIMIT $1;`
		args = []any{fetchLimit}
	}

	expenses, err := r.queryExpenses(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(expenses) > limit {
		last := expenses[limit-1]
		token := pagination.EncodeExpenseToken(last.Date, last.ExpenseID)
		nextTokenVal = &token
		expenses = expenses[:limit]
	}
	return expenses, nextTokenVal, nil
}

// ListExpensesByDatePrefix retrieves expenses whose date starts with the
// given prefix, typically a "YYYY-MM" period id.
func (r *PgxExpenseRepository) ListExpensesByDatePrefix(ctx context.Context, prefix string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_date LIKE $1 || '%' ORDER BY expense_date, expense_id;`
	return r.queryExpenses(ctx, query, prefix)
}
