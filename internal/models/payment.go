package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table, keyed by
// (period_id, flat_no).
type Payment struct {
	PeriodID  string           `db:"period_id"`
	FlatNo    string           `db:"flat_no"`
	Paid      bool             `db:"paid"`
	Verified  bool             `db:"verified"`
	RefNo     *string          `db:"ref_no"`
	Amount    *decimal.Decimal `db:"amount"`
	Mode      string           `db:"mode"`
	MarkedBy  string           `db:"marked_by"`
	CreatedAt time.Time        `db:"created_at"`
	UpdatedAt time.Time        `db:"updated_at"`
}
