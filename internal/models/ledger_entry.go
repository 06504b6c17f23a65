package models

import "github.com/shopspring/decimal"

// LedgerEntry represents a row of the ledger_entries table, the manual
// adjustments admins attach to a period.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	PeriodID    string          `db:"period_id"`
	Date        string          `db:"entry_date"`
	EntryType   string          `db:"entry_type"`
	Particulars string          `db:"particulars"`
	Instrument  string          `db:"instrument"`
	InstNo      string          `db:"inst_no"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}
