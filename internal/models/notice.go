package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notice represents a row of the notices table.
type Notice struct {
	NoticeID  string           `db:"notice_id"`
	Title     string           `db:"title"`
	Body      string           `db:"body"`
	Audience  string           `db:"audience"`
	Type      string           `db:"notice_type"`
	PeriodID  *string          `db:"period_id"`
	Amount    *decimal.Decimal `db:"amount"`
	DueDate   *string          `db:"due_date"`
	Pinned    bool             `db:"pinned"`
	ValidTill *time.Time       `db:"valid_till"`
	CreatedAt time.Time        `db:"created_at"`
	CreatedBy string           `db:"created_by"`
}
