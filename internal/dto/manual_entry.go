package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// CreateManualEntryRequest defines the data needed to add a manual
// ledger adjustment to a period.
type CreateManualEntryRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Type        string          `json:"type" binding:"required,oneof=Cr Dr"`
	Particulars string          `json:"particulars" binding:"required"`
	Instrument  string          `json:"instrument,omitempty"`
	InstNo      string          `json:"instNo,omitempty"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateManualEntryRequest defines the editable fields of a manual entry.
type UpdateManualEntryRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Type        string          `json:"type" binding:"required,oneof=Cr Dr"`
	Particulars string          `json:"particulars" binding:"required"`
	Instrument  string          `json:"instrument,omitempty"`
	InstNo      string          `json:"instNo,omitempty"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ManualEntryResponse defines the data returned for a manual entry.
type ManualEntryResponse struct {
	EntryID     string          `json:"entryID"`
	PeriodID    string          `json:"periodID"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Particulars string          `json:"particulars"`
	Instrument  string          `json:"instrument,omitempty"`
	InstNo      string          `json:"instNo,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToManualEntryResponse converts a domain.ManualEntry to ManualEntryResponse DTO.
func ToManualEntryResponse(m *domain.ManualEntry) ManualEntryResponse {
	return ManualEntryResponse{
		EntryID:     m.EntryID,
		PeriodID:    m.PeriodID,
		Date:        m.Date,
		Type:        string(m.Type),
		Particulars: m.Particulars,
		Instrument:  m.Instrument,
		InstNo:      m.InstNo,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToListManualEntryResponse converts a slice of domain.ManualEntry to a slice of ManualEntryResponse DTOs.
func ToListManualEntryResponse(entries []domain.ManualEntry) []ManualEntryResponse {
	res := make([]ManualEntryResponse, len(entries))
	for i, m := range entries {
		res[i] = ToManualEntryResponse(&m)
	}
	return res
}
