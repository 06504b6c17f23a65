package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	portsrepo "github.com/urmilakunj/society_backend/internal/core/ports/repositories"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewPaymentService creates the maintenance payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		periodRepo:  periodRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// MarkPaid records a resident's own payment declaration. The record
// lands unverified; only an admin's verification admits it to the ledger.
func (s *paymentService) MarkPaid(ctx context.Context, periodID, flatNo string, req dto.MarkPaidRequest, markedBy string) (*domain.Payment, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PeriodID:  periodID,
		FlatNo:    flatNo,
		Paid:      true,
		Verified:  false,
		RefNo:     req.RefNo,
		Amount:    req.Amount,
		Mode:      req.Mode,
		MarkedBy:  markedBy,
		UpdatedAt: domain.TimestampFromTime(time.Now()),
	}

	if err := s.paymentRepo.UpsertPayment(ctx, payment); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payment marked paid",
		slog.String("period_id", periodID), slog.String("flat_no", flatNo))
	return &payment, nil
}

// SetVerified flips the admin verification flag on an existing payment.
func (s *paymentService) SetVerified(ctx context.Context, periodID, flatNo string, verified bool, verifierUserID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPayment(ctx, periodID, flatNo)
	if err != nil {
		return nil, err
	}

	payment.Verified = verified
	payment.UpdatedAt = domain.TimestampFromTime(time.Now())
	if err := s.paymentRepo.UpsertPayment(ctx, *payment); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payment verification updated",
		slog.String("period_id", periodID),
		slog.String("flat_no", flatNo),
		slog.Bool("verified", verified),
		slog.String("verified_by", verifierUserID))
	return payment, nil
}

// RecordPayment stores an admin-entered payment, paid and verified in
// one step. Used when a resident pays in cash at the society office.
func (s *paymentService) RecordPayment(ctx context.Context, periodID string, req dto.RecordPaymentRequest, adminUserID string) (*domain.Payment, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PeriodID:  periodID,
		FlatNo:    req.FlatNo,
		Paid:      true,
		Verified:  true,
		RefNo:     req.RefNo,
		Amount:    req.Amount,
		Mode:      req.Mode,
		MarkedBy:  adminUserID,
		UpdatedAt: domain.TimestampFromTime(time.Now()),
	}

	if err := s.paymentRepo.UpsertPayment(ctx, payment); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payment recorded by admin",
		slog.String("period_id", periodID), slog.String("flat_no", req.FlatNo))
	return &payment, nil
}

// GetPayment retrieves the payment record for a flat within a period.
func (s *paymentService) GetPayment(ctx context.Context, periodID, flatNo string) (*domain.Payment, error) {
	return s.paymentRepo.FindPayment(ctx, periodID, flatNo)
}

// ListPaymentsByPeriod retrieves every payment record for a period.
func (s *paymentService) ListPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for period %s: %w", periodID, err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// ListPaymentsByFlat retrieves a flat's payment history.
func (s *paymentService) ListPaymentsByFlat(ctx context.Context, flatNo string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByFlat(ctx, flatNo)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for flat %s: %w", flatNo, err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
