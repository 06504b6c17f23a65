package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to open a new dues period.
type CreatePeriodRequest struct {
	PeriodID string          `json:"periodID" binding:"required,yyyymm"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// PeriodResponse defines the data returned for a dues period.
type PeriodResponse struct {
	PeriodID  string          `json:"periodID"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"dueDate"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Amount:    p.Amount,
		DueDate:   p.DueDate,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToListPeriodResponse converts a slice of domain.Period to a slice of PeriodResponse DTOs.
func ToListPeriodResponse(periods []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return res
}
