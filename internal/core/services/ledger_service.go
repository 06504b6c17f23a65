package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/core/ledger"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type ledgerService struct {
	BaseService
	periodRepo  portsrepo.PeriodRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewLedgerService creates the statement reconciliation service.
func NewLedgerService(
	periodRepo portsrepo.PeriodRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		periodRepo:  periodRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		ledgerRepo:  ledgerRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetStatement gathers the period's sources and runs the reconciliation.
// A missing opening balance degrades to zero; the statement must render
// even when the balance record was never written.
func (s *ledgerService) GetStatement(ctx context.Context, periodID string) (*domain.LedgerStatement, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}

	opening, err := s.ledgerRepo.FindOpeningBalance(ctx, periodID)
	if err != nil {
		s.LogWarn(ctx, "opening balance unavailable, using zero",
			slog.String("period_id", periodID), slog.String("error", err.Error()))
		opening = decimal.Zero
	}

	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for statement: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpensesByDatePrefix(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for statement: %w", err)
	}
	entries, err := s.ledgerRepo.ListManualEntriesByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load manual entries for statement: %w", err)
	}

	stmt := ledger.Reconcile(ledger.Sources{
		Period:        *period,
		Opening:       opening,
		Payments:      payments,
		Expenses:      expenses,
		ManualEntries: entries,
		Now:           time.Now(),
	})
	return &stmt, nil
}

// GetPeriodStats computes the collection snapshot for a period. A
// roster count failure falls back to the payment records standing in
// for the expected population.
func (s *ledgerService) GetPeriodStats(ctx context.Context, periodID string) (*domain.PeriodStats, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for stats: %w", err)
	}
	flatCount, err := s.userRepo.CountResidentFlats(ctx)
	if err != nil {
		s.LogWarn(ctx, "flat roster unavailable, falling back to payment count",
			slog.String("error", err.Error()))
		flatCount = 0
	}

	stats := ledger.Stats(*period, payments, flatCount)
	return &stats, nil
}

// GetOpeningBalance retrieves a period's stored opening balance.
func (s *ledgerService) GetOpeningBalance(ctx context.Context, periodID string) (decimal.Decimal, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return decimal.Zero, err
	}
	return s.ledgerRepo.FindOpeningBalance(ctx, periodID)
}

// SetOpeningBalance stores the opening balance for a period.
func (s *ledgerService) SetOpeningBalance(ctx context.Context, periodID string, amount decimal.Decimal, updaterUserID string) error {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return err
	}
	if err := s.ledgerRepo.SetOpeningBalance(ctx, periodID, amount, updaterUserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "opening balance updated",
		slog.String("period_id", periodID), slog.String("amount", amount.String()))
	return nil
}

// ListManualEntries retrieves a period's manual adjustments.
func (s *ledgerService) ListManualEntries(ctx context.Context, periodID string) ([]domain.ManualEntry, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListManualEntriesByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual entries: %w", err)
	}
	if entries == nil {
		return []domain.ManualEntry{}, nil
	}
	return entries, nil
}

// CreateManualEntry adds a manual adjustment to a period.
func (s *ledgerService) CreateManualEntry(ctx context.Context, periodID string, req dto.CreateManualEntryRequest, creatorUserID string) (*domain.ManualEntry, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.ManualEntry{
		EntryID:     uuid.NewString(),
		PeriodID:    periodID,
		Date:        req.Date,
		Type:        domain.EntryType(req.Type),
		Particulars: req.Particulars,
		Instrument:  req.Instrument,
		InstNo:      req.InstNo,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveManualEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "manual entry created",
		slog.String("period_id", periodID), slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

// UpdateManualEntry replaces a manual adjustment's fields.
func (s *ledgerService) UpdateManualEntry(ctx context.Context, periodID, entryID string, req dto.UpdateManualEntryRequest, updaterUserID string) (*domain.ManualEntry, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	entry, err := s.ledgerRepo.FindManualEntryByID(ctx, periodID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Date = req.Date
	entry.Type = domain.EntryType(req.Type)
	entry.Particulars = req.Particulars
	entry.Instrument = req.Instrument
	entry.InstNo = req.InstNo
	entry.Amount = req.Amount
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if err := s.ledgerRepo.UpdateManualEntry(ctx, *entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "manual entry updated",
		slog.String("period_id", periodID), slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteManualEntry removes a manual adjustment.
func (s *ledgerService) DeleteManualEntry(ctx context.Context, periodID, entryID string) error {
	if err := s.ledgerRepo.DeleteManualEntry(ctx, periodID, entryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "manual entry deleted",
		slog.String("period_id", periodID), slog.String("entry_id", entryID))
	return nil
}

// ExportStatementCSV renders the period's statement as CSV, row grid
// first and the totals block after a blank line.
func (s *ledgerService) ExportStatementCSV(ctx context.Context, periodID string) ([]byte, error) {
	stmt, err := s.GetStatement(ctx, periodID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Month", "Date", "Type", "Particulars", "Instrument", "Inst No", "Debit", "Credit", "Balance", "Source"},
	}
	for _, row := range stmt.Rows {
		records = append(records, []string{
			stmt.PeriodID,
			row.Date,
			string(row.Type),
			row.Particulars,
			row.Instrument,
			row.InstNo,
			row.Debit.String(),
			row.Credit.String(),
			row.Balance.String(),
			string(row.Source),
		})
	}
	records = append(records,
		[]string{},
		[]string{"Opening", stmt.Totals.Opening.String()},
		[]string{"Total Credits", stmt.Totals.Credits.String()},
		[]string{"Total Debits", stmt.Totals.Debits.String()},
		[]string{"Closing", stmt.Totals.Closing.String()},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write statement csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportStatementXLSX renders the period's statement as a workbook with
// the same layout as the CSV export.
func (s *ledgerService) ExportStatementXLSX(ctx context.Context, periodID string) ([]byte, error) {
	stmt, err := s.GetStatement(ctx, periodID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ledger"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Month", "Date", "Type", "Particulars", "Instrument", "Inst No", "Debit", "Credit", "Balance", "Source"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range stmt.Rows {
		values := []any{
			stmt.PeriodID, row.Date, string(row.Type), row.Particulars,
			row.Instrument, row.InstNo, row.Debit.String(), row.Credit.String(),
			row.Balance.String(), string(row.Source),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write statement row: %w", err)
			}
		}
	}

	totalsStart := len(stmt.Rows) + 3
	totals := [][2]string{
		{"Opening", stmt.Totals.Opening.String()},
		{"Total Credits", stmt.Totals.Credits.String()},
		{"Total Debits", stmt.Totals.Debits.String()},
		{"Closing", stmt.Totals.Closing.String()},
	}
	for i, t := range totals {
		labelCell, _ := excelize.CoordinatesToCellName(1, totalsStart+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, totalsStart+i)
		if err := f.SetCellValue(sheet, labelCell, t[0]); err != nil {
			return nil, fmt.Errorf("failed to write totals label: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, t[1]); err != nil {
			return nil, fmt.Errorf("failed to write totals value: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
