package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for manual ledger
// entries and opening balances.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `entry_id, period_id, entry_date, entry_type, particulars, instrument, inst_no, amount, created_at, created_by, last_updated_at, last_updated_by`

// SaveManualEntry persists a new manual entry.
func (r *PgxLedgerRepository) SaveManualEntry(ctx context.Context, entry domain.ManualEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (entry_id, period_id, entry_date, entry_type, particulars, instrument, inst_no, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.PeriodID,
		modelEntry.Date,
		modelEntry.EntryType,
		modelEntry.Particulars,
		modelEntry.Instrument,
		modelEntry.InstNo,
		modelEntry.Amount,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save manual entry %s: %w", modelEntry.EntryID, err)
	}
	return nil
}

// UpdateManualEntry replaces an existing manual entry's fields.
func (r *PgxLedgerRepository) UpdateManualEntry(ctx context.Context, entry domain.ManualEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)

	query := `
		UPDATE ledger_entries SET
			entry_date = $3,
			entry_type = $4,
			particulars = $5,
			instrument = $6,
			inst_no = $7,
			amount = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE period_id = $1 AND entry_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelEntry.PeriodID,
		modelEntry.EntryID,
		modelEntry.Date,
		modelEntry.EntryType,
		modelEntry.Particulars,
		modelEntry.Instrument,
		modelEntry.InstNo,
		modelEntry.Amount,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update manual entry %s: %w", modelEntry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteManualEntry removes a manual entry from a period.
func (r *PgxLedgerRepository) DeleteManualEntry(ctx context.Context, periodID, entryID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM ledger_entries WHERE period_id = $1 AND entry_id = $2;`, periodID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete manual entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindManualEntryByID retrieves a specific manual entry within a period.
func (r *PgxLedgerRepository) FindManualEntryByID(ctx context.Context, periodID, entryID string) (*domain.ManualEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE period_id = $1 AND entry_id = $2;`

	var modelEntry models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, periodID, entryID).Scan(
		&modelEntry.EntryID,
		&modelEntry.PeriodID,
		&modelEntry.Date,
		&modelEntry.EntryType,
		&modelEntry.Particulars,
		&modelEntry.Instrument,
		&modelEntry.InstNo,
		&modelEntry.Amount,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find manual entry %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainManualEntry(modelEntry)
	return &domainEntry, nil
}

func (r *PgxLedgerRepository) queryManualEntries(ctx context.Context, query string, args ...any) ([]domain.ManualEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		var entry models.LedgerEntry
		err := row.Scan(
			&entry.EntryID,
			&entry.PeriodID,
			&entry.Date,
			&entry.EntryType,
			&entry.Particulars,
			&entry.Instrument,
			&entry.InstNo,
			&entry.Amount,
			&entry.CreatedAt,
			&entry.CreatedBy,
			&entry.LastUpdatedAt,
			&entry.LastUpdatedBy,
		)
		return entry, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan manual entries: %w", err)
	}

	return mapping.ToDomainManualEntrySlice(modelEntries), nil
}

// ListManualEntriesByPeriod retrieves a period's manual entries ordered
// by date ascending.
func (r *PgxLedgerRepository) ListManualEntriesByPeriod(ctx context.Context, periodID string) ([]domain.ManualEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE period_id = $1 ORDER BY entry_date, entry_id;`
	return r.queryManualEntries(ctx, query, periodID)
}

// ListAllManualEntries retrieves every manual entry across periods.
func (r *PgxLedgerRepository) ListAllManualEntries(ctx context.Context) ([]domain.ManualEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries ORDER BY period_id, entry_date, entry_id;`
	return r.queryManualEntries(ctx, query)
}

// FindOpeningBalance retrieves the opening balance for a period. A
// period with no stored balance yields zero.
func (r *PgxLedgerRepository) FindOpeningBalance(ctx context.Context, periodID string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT amount FROM opening_balances WHERE period_id = $1;`, periodID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find opening balance for %s: %w", periodID, err)
	}
	return amount, nil
}

// SetOpeningBalance inserts or replaces a period's opening balance.
func (r *PgxLedgerRepository) SetOpeningBalance(ctx context.Context, periodID string, amount decimal.Decimal, updatedBy string) error {
	query := `
		INSERT INTO opening_balances (period_id, amount, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (period_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, periodID, amount, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set opening balance for %s: %w", periodID, err)
	}
	return nil
}
