package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	"github.com/urmilakunj/society_backend/internal/models"
	"github.com/urmilakunj/society_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for maintenance payments.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `period_id, flat_no, paid, verified, ref_no, amount, mode, marked_by, created_at, updated_at`

// UpsertPayment inserts or replaces the record for (period, flat).
// Last write wins, matching how residents and admins overwrite each
// other's declarations.
func (r *PgxPaymentRepository) UpsertPayment(ctx context.Context, payment domain.Payment) error {
	modelPayment := mapping.ToModelPayment(payment, time.Now())

	query := `
		INSERT INTO payments (period_id, flat_no, paid, verified, ref_no, amount, mode, marked_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), $9)
		ON CONFLICT (period_id, flat_no) DO UPDATE SET
			paid = EXCLUDED.paid,
			verified = EXCLUDED.verified,
			ref_no = EXCLUDED.ref_no,
			amount = EXCLUDED.amount,
			mode = EXCLUDED.mode,
			marked_by = EXCLUDED.marked_by,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelPayment.PeriodID,
		modelPayment.FlatNo,
		modelPayment.Paid,
		modelPayment.Verified,
		modelPayment.RefNo,
		modelPayment.Amount,
		modelPayment.Mode,
		modelPayment.MarkedBy,
		modelPayment.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert payment %s/%s: %w", modelPayment.PeriodID, modelPayment.FlatNo, err)
	}
	return nil
}

// FindPayment retrieves the payment record for a flat within a period.
func (r *PgxPaymentRepository) FindPayment(ctx context.Context, periodID, flatNo string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE period_id = $1 AND flat_no = $2;`

	var modelPayment models.Payment
	err := r.Pool.QueryRow(ctx, query, periodID, flatNo).Scan(
		&modelPayment.PeriodID,
		&modelPayment.FlatNo,
		&modelPayment.Paid,
		&modelPayment.Verified,
		&modelPayment.RefNo,
		&modelPayment.Amount,
		&modelPayment.Mode,
		&modelPayment.MarkedBy,
		&modelPayment.CreatedAt,
		&modelPayment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s/%s: %w", periodID, flatNo, err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var payment models.Payment
		err := row.Scan(
			&payment.PeriodID,
			&payment.FlatNo,
			&payment.Paid,
			&payment.Verified,
			&payment.RefNo,
			&payment.Amount,
			&payment.Mode,
			&payment.MarkedBy,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		return payment, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// ListPaymentsByPeriod retrieves every payment record for a period.
func (r *PgxPaymentRepository) ListPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE period_id = $1 ORDER BY flat_no;`
	return r.queryPayments(ctx, query, periodID)
}

// ListPaymentsByFlat retrieves a flat's payment history across periods.
func (r *PgxPaymentRepository) ListPaymentsByFlat(ctx context.Context, flatNo string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE flat_no = $1 ORDER BY period_id DESC;`
	return r.queryPayments(ctx, query, flatNo)
}

// ListAllPayments retrieves every payment record across all periods.
func (r *PgxPaymentRepository) ListAllPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY period_id, flat_no;`
	return r.queryPayments(ctx, query)
}
