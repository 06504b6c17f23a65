package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		Date:      req.Date,
		Title:     req.Title,
		Category:  req.Category,
		Amount:    req.Amount,
		Notes:     req.Notes,
		Mode:      req.Mode,
		InstNo:    req.InstNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "expense created",
		slog.String("expense_id", expense.ExpenseID), slog.String("title", expense.Title))
	return &expense, nil
}

// UpdateExpense replaces an expense's editable fields.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	expense.Date = req.Date
	expense.Title = req.Title
	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Notes = req.Notes
	expense.Mode = req.Mode
	expense.InstNo = req.InstNo
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// GetExpenseByID retrieves a specific expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpensesPage retrieves one page of expenses, newest first, and a
// token for the next page when more rows exist.
func (s *expenseService) ListExpensesPage(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	expenses, token, err := s.expenseRepo.ListExpensesPage(ctx, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to list expenses page: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, token, nil
}
