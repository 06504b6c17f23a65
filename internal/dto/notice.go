package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// CreateNoticeRequest defines the data needed to publish a notice.
type CreateNoticeRequest struct {
	Title     string     `json:"title" binding:"required"`
	Body      string     `json:"body,omitempty"`
	Audience  string     `json:"audience,omitempty"`
	Pinned    bool       `json:"pinned,omitempty"`
	ValidTill *time.Time `json:"validTill,omitempty"`
}

// NoticeResponse defines the data returned for a notice.
type NoticeResponse struct {
	NoticeID  string           `json:"noticeID"`
	Title     string           `json:"title"`
	Body      string           `json:"body,omitempty"`
	Audience  string           `json:"audience,omitempty"`
	Type      string           `json:"type"`
	PeriodID  string           `json:"periodID,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	DueDate   string           `json:"dueDate,omitempty"`
	Pinned    bool             `json:"pinned"`
	ValidTill *time.Time       `json:"validTill,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	CreatedBy string           `json:"createdBy"`
}

// ToNoticeResponse converts a domain.Notice to NoticeResponse DTO.
func ToNoticeResponse(n *domain.Notice) NoticeResponse {
	return NoticeResponse{
		NoticeID:  n.NoticeID,
		Title:     n.Title,
		Body:      n.Body,
		Audience:  n.Audience,
		Type:      string(n.Type),
		PeriodID:  n.PeriodID,
		Amount:    n.Amount,
		DueDate:   n.DueDate,
		Pinned:    n.Pinned,
		ValidTill: n.ValidTill,
		CreatedAt: n.CreatedAt,
		CreatedBy: n.CreatedBy,
	}
}

// ToListNoticeResponse converts a slice of domain.Notice to a slice of NoticeResponse DTOs.
func ToListNoticeResponse(notices []domain.Notice) []NoticeResponse {
	res := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		res[i] = ToNoticeResponse(&n)
	}
	return res
}
