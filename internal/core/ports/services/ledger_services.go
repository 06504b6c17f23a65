package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/dto"
)

// LedgerReaderSvc defines read operations on reconciled statements
type LedgerReaderSvc interface {
	// GetStatement reconciles and returns the full statement for a period.
	GetStatement(ctx context.Context, periodID string) (*domain.LedgerStatement, error)

	// GetPeriodStats computes the collection snapshot for a period.
	GetPeriodStats(ctx context.Context, periodID string) (*domain.PeriodStats, error)

	// GetOpeningBalance retrieves a period's stored opening balance,
	// zero when none was ever set.
	GetOpeningBalance(ctx context.Context, periodID string) (decimal.Decimal, error)

	// ListManualEntries retrieves a period's manual adjustments.
	ListManualEntries(ctx context.Context, periodID string) ([]domain.ManualEntry, error)

	// ExportStatementXLSX renders the period's statement as a workbook.
	ExportStatementXLSX(ctx context.Context, periodID string) ([]byte, error)

	// ExportStatementCSV renders the period's statement as CSV rows
	// with a trailing totals block.
	ExportStatementCSV(ctx context.Context, periodID string) ([]byte, error)
}

// LedgerWriterSvc defines write operations on ledger inputs
type LedgerWriterSvc interface {
	// SetOpeningBalance stores the opening balance for a period.
	SetOpeningBalance(ctx context.Context, periodID string, amount decimal.Decimal, updaterUserID string) error

	// CreateManualEntry adds a manual adjustment to a period.
	CreateManualEntry(ctx context.Context, periodID string, req dto.CreateManualEntryRequest, creatorUserID string) (*domain.ManualEntry, error)

	// UpdateManualEntry replaces a manual adjustment's fields.
	UpdateManualEntry(ctx context.Context, periodID, entryID string, req dto.UpdateManualEntryRequest, updaterUserID string) (*domain.ManualEntry, error)

	// DeleteManualEntry removes a manual adjustment.
	DeleteManualEntry(ctx context.Context, periodID, entryID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
