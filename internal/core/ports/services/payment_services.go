package services

import (
	"context"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for maintenance payments
type PaymentReaderSvc interface {
	// GetPayment retrieves the payment record for a flat within a period.
	GetPayment(ctx context.Context, periodID, flatNo string) (*domain.Payment, error)

	// ListPaymentsByPeriod retrieves every payment record for a period.
	ListPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error)

	// ListPaymentsByFlat retrieves a flat's payment history.
	ListPaymentsByFlat(ctx context.Context, flatNo string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for maintenance payments
type PaymentWriterSvc interface {
	// MarkPaid records a resident's own payment declaration. The record
	// is stored unverified.
	MarkPaid(ctx context.Context, periodID, flatNo string, req dto.MarkPaidRequest, markedBy string) (*domain.Payment, error)

	// SetVerified flips the admin verification flag on a payment.
	SetVerified(ctx context.Context, periodID, flatNo string, verified bool, verifierUserID string) (*domain.Payment, error)

	// RecordPayment stores an admin-entered payment, paid and verified
	// in one step.
	RecordPayment(ctx context.Context, periodID string, req dto.RecordPaymentRequest, adminUserID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
