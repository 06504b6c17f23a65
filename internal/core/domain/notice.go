package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoticeType distinguishes plain announcements from the structured dues
// notices the system generates when a period is opened.
type NoticeType string

const (
	NoticeTypeGeneral NoticeType = "general"
	NoticeTypeDues    NoticeType = "dues"
)

// Notice is a broadcast message shown to residents.
type Notice struct {
	NoticeID  string           `json:"noticeID"`
	Title     string           `json:"title"`
	Body      string           `json:"body,omitempty"`
	Audience  string           `json:"audience,omitempty"` // empty means everyone
	Type      NoticeType       `json:"type"`
	PeriodID  string           `json:"periodID,omitempty"` // set for dues notices
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	DueDate   string           `json:"dueDate,omitempty"`
	Pinned    bool             `json:"pinned"`
	ValidTill *time.Time       `json:"validTill,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	CreatedBy string           `json:"createdBy"`
}
