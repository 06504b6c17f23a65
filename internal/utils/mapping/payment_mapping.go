package mapping

import (
	"time"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment. The
// polymorphic update timestamp is resolved to a concrete instant here;
// now supplies the fallback for records that never carried one.
func ToModelPayment(d domain.Payment, now time.Time) models.Payment {
	return models.Payment{
		PeriodID:  d.PeriodID,
		FlatNo:    d.FlatNo,
		Paid:      d.Paid,
		Verified:  d.Verified,
		RefNo:     d.RefNo,
		Amount:    d.Amount,
		Mode:      d.Mode,
		MarkedBy:  d.MarkedBy,
		UpdatedAt: d.UpdatedAt.Time(now),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PeriodID:  m.PeriodID,
		FlatNo:    m.FlatNo,
		Paid:      m.Paid,
		Verified:  m.Verified,
		RefNo:     m.RefNo,
		Amount:    m.Amount,
		Mode:      m.Mode,
		MarkedBy:  m.MarkedBy,
		UpdatedAt: domain.TimestampFromTime(m.UpdatedAt),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
