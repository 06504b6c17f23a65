package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// ManualEntryReader defines read operations for manual ledger entries
type ManualEntryReader interface {
	// FindManualEntryByID retrieves a specific manual entry within a period.
	FindManualEntryByID(ctx context.Context, periodID, entryID string) (*domain.ManualEntry, error)

	// ListManualEntriesByPeriod retrieves a period's manual entries
	// ordered by date ascending.
	ListManualEntriesByPeriod(ctx context.Context, periodID string) ([]domain.ManualEntry, error)

	// ListAllManualEntries retrieves every manual entry across periods.
	ListAllManualEntries(ctx context.Context) ([]domain.ManualEntry, error)
}

// ManualEntryWriter defines write operations for manual ledger entries
type ManualEntryWriter interface {
	// SaveManualEntry persists a new manual entry.
	SaveManualEntry(ctx context.Context, entry domain.ManualEntry) error

	// UpdateManualEntry replaces an existing manual entry's fields.
	UpdateManualEntry(ctx context.Context, entry domain.ManualEntry) error

	// DeleteManualEntry removes a manual entry from a period.
	DeleteManualEntry(ctx context.Context, periodID, entryID string) error
}

// OpeningBalanceReader defines read operations for per-period opening balances
type OpeningBalanceReader interface {
	// FindOpeningBalance retrieves the opening balance for a period.
	// A period with no stored balance yields zero, not an error.
	FindOpeningBalance(ctx context.Context, periodID string) (decimal.Decimal, error)
}

// OpeningBalanceWriter defines write operations for per-period opening balances
type OpeningBalanceWriter interface {
	// SetOpeningBalance inserts or replaces a period's opening balance.
	SetOpeningBalance(ctx context.Context, periodID string, amount decimal.Decimal, updatedBy string) error
}

// LedgerRepositoryFacade combines the manual entry and opening balance
// repository interfaces
type LedgerRepositoryFacade interface {
	ManualEntryReader
	ManualEntryWriter
	OpeningBalanceReader
	OpeningBalanceWriter
}
