package mapping

import (
	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Date:        d.Date,
		Title:       d.Title,
		Category:    d.Category,
		Amount:      d.Amount,
		Notes:       d.Notes,
		Mode:        d.Mode,
		InstNo:      d.InstNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        m.Date,
		Title:       m.Title,
		Category:    m.Category,
		Amount:      m.Amount,
		Notes:       m.Notes,
		Mode:        m.Mode,
		InstNo:      m.InstNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
