package mapping

import (
	"github.com/urmilakunj/society_backend/internal/core/domain"
	"github.com/urmilakunj/society_backend/internal/models"
)

// ToModelNotice converts a domain Notice to a model Notice
func ToModelNotice(d domain.Notice) models.Notice {
	m := models.Notice{
		NoticeID:  d.NoticeID,
		Title:     d.Title,
		Body:      d.Body,
		Audience:  d.Audience,
		Type:      string(d.Type),
		Amount:    d.Amount,
		Pinned:    d.Pinned,
		ValidTill: d.ValidTill,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
	if d.PeriodID != "" {
		m.PeriodID = &d.PeriodID
	}
	if d.DueDate != "" {
		m.DueDate = &d.DueDate
	}
	return m
}

// ToDomainNotice converts a model Notice to a domain Notice
func ToDomainNotice(m models.Notice) domain.Notice {
	d := domain.Notice{
		NoticeID:  m.NoticeID,
		Title:     m.Title,
		Body:      m.Body,
		Audience:  m.Audience,
		Type:      domain.NoticeType(m.Type),
		Amount:    m.Amount,
		Pinned:    m.Pinned,
		ValidTill: m.ValidTill,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
	if m.PeriodID != nil {
		d.PeriodID = *m.PeriodID
	}
	if m.DueDate != nil {
		d.DueDate = *m.DueDate
	}
	return d
}

// ToDomainNoticeSlice converts a slice of model Notices to domain Notices
func ToDomainNoticeSlice(ms []models.Notice) []domain.Notice {
	ds := make([]domain.Notice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotice(m)
	}
	return ds
}
