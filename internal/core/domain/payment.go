package domain

import "github.com/shopspring/decimal"

// Payment is the per-flat maintenance record for a period. At most one
// exists per (period, flat) pair; writes are last-write-wins upserts.
//
// Paid and Verified are independent flags supplied by the source. The
// ledger does not reject inconsistent combinations; it only admits records
// with both flags set (see ledger.NormalizePayments).
type Payment struct {
	PeriodID  string           `json:"periodID"`
	FlatNo    string           `json:"flatNo"`
	Paid      bool             `json:"paid"`
	Verified  bool             `json:"verified"`
	RefNo     *string          `json:"refNo,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"` // nil means "use the period's due amount"
	Mode      string           `json:"mode,omitempty"`   // e.g. "Cash", "Online", "UPI"
	MarkedBy  string           `json:"markedBy,omitempty"`
	UpdatedAt *Timestamp       `json:"updatedAt,omitempty"`
}
