package repositories

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// PaymentReader defines read operations for maintenance payments
type PaymentReader interface {
	// FindPayment retrieves the payment record for a flat within a period.
	FindPayment(ctx context.Context, periodID, flatNo string) (*domain.Payment, error)

	// ListPaymentsByPeriod retrieves every payment record for a period.
	ListPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error)

	// ListPaymentsByFlat retrieves a flat's payment history across periods.
	ListPaymentsByFlat(ctx context.Context, flatNo string) ([]domain.Payment, error)

	// ListAllPayments retrieves every payment record across all periods.
	ListAllPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for maintenance payments
type PaymentWriter interface {
	// UpsertPayment inserts or replaces the payment record for
	// (period, flat). Last write wins.
	UpsertPayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
