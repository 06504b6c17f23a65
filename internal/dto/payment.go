package dto

import (
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// MarkPaidRequest defines the data a resident submits when declaring a
// payment. All fields are optional; a bare request records a cash
// payment of the period's due amount.
type MarkPaidRequest struct {
	RefNo  *string          `json:"refNo,omitempty"`
	Mode   string           `json:"mode,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// VerifyPaymentRequest defines the admin verification toggle.
type VerifyPaymentRequest struct {
	Verified bool `json:"verified"`
}

// RecordPaymentRequest defines an admin recording a payment on behalf of
// a flat. The record is created paid and verified in one step.
type RecordPaymentRequest struct {
	FlatNo string           `json:"flatNo" binding:"required"`
	RefNo  *string          `json:"refNo,omitempty"`
	Mode   string           `json:"mode,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// PaymentResponse defines the data returned for a payment record.
type PaymentResponse struct {
	PeriodID  string            `json:"periodID"`
	FlatNo    string            `json:"flatNo"`
	Paid      bool              `json:"paid"`
	Verified  bool              `json:"verified"`
	RefNo     *string           `json:"refNo,omitempty"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
	Mode      string            `json:"mode,omitempty"`
	MarkedBy  string            `json:"markedBy,omitempty"`
	UpdatedAt *domain.Timestamp `json:"updatedAt,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PeriodID:  p.PeriodID,
		FlatNo:    p.FlatNo,
		Paid:      p.Paid,
		Verified:  p.Verified,
		RefNo:     p.RefNo,
		Amount:    p.Amount,
		Mode:      p.Mode,
		MarkedBy:  p.MarkedBy,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}
