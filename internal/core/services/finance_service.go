package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/core/ledger"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
)

type financeService struct {
	BaseService
	periodRepo  portsrepo.PeriodRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewFinanceService creates the lifetime aggregation service.
func NewFinanceService(
	periodRepo portsrepo.PeriodRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
) portssvc.FinanceSvcFacade {
	return &financeService{
		periodRepo:  periodRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

// GetUnifiedTotals aggregates every stream across all periods into the
// society's current balance. Each stream degrades to zero on fetch
// failure so a partial outage still produces a summary with the figures
// that are available.
func (s *financeService) GetUnifiedTotals(ctx context.Context) (*domain.UnifiedTotals, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogWarn(ctx, "periods unavailable for unified totals", slog.String("error", err.Error()))
		periods = nil
	}

	// Periods list newest first; the earliest one anchors the lifetime
	// opening balance.
	opening := decimal.Zero
	if len(periods) > 0 {
		earliest := periods[len(periods)-1]
		ob, err := s.ledgerRepo.FindOpeningBalance(ctx, earliest.PeriodID)
		if err != nil {
			s.LogWarn(ctx, "opening balance unavailable for unified totals",
				slog.String("period_id", earliest.PeriodID), slog.String("error", err.Error()))
		} else {
			opening = ob
		}
	}

	dueByPeriod := make(map[string]domain.Period, len(periods))
	for _, p := range periods {
		dueByPeriod[p.PeriodID] = p
	}

	verifiedIncome := decimal.Zero
	payments, err := s.paymentRepo.ListAllPayments(ctx)
	if err != nil {
		s.LogWarn(ctx, "payments unavailable for unified totals", slog.String("error", err.Error()))
	} else {
		for _, p := range payments {
			if !p.Paid || !p.Verified {
				continue
			}
			verifiedIncome = verifiedIncome.Add(ledger.VerifiedCredit(p, dueByPeriod[p.PeriodID]))
		}
	}

	expensesTotal := decimal.Zero
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogWarn(ctx, "expenses unavailable for unified totals", slog.String("error", err.Error()))
	} else {
		for _, e := range expenses {
			expensesTotal = expensesTotal.Add(e.Amount)
		}
	}

	manualCredits := decimal.Zero
	manualDebits := decimal.Zero
	entries, err := s.ledgerRepo.ListAllManualEntries(ctx)
	if err != nil {
		s.LogWarn(ctx, "manual entries unavailable for unified totals", slog.String("error", err.Error()))
	} else {
		for _, m := range entries {
			if m.Type == domain.EntryTypeCredit {
				manualCredits = manualCredits.Add(m.Amount)
			} else {
				manualDebits = manualDebits.Add(m.Amount)
			}
		}
	}

	totals := ledger.Unify(ledger.UnifiedInputs{
		Opening:        opening,
		VerifiedIncome: verifiedIncome,
		ManualCredits:  manualCredits,
		Expenses:       expensesTotal,
		ManualDebits:   manualDebits,
	})
	return &totals, nil
}
