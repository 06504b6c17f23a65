package domain

import "github.com/shopspring/decimal"

// EntryType marks a ledger row as a credit or a debit.
type EntryType string

const (
	EntryTypeCredit EntryType = "Cr"
	EntryTypeDebit  EntryType = "Dr"
)

// RowSource records how a ledger row came to exist.
type RowSource string

const (
	// RowSourceAuto marks rows derived from payments and expenses.
	RowSourceAuto RowSource = "auto"
	// RowSourceManual marks rows entered directly by an admin.
	RowSourceManual RowSource = "manual"
)

// ManualEntry is an adjustment row keyed to a period, written by an admin
// to cover transactions the payment and expense records cannot express
// (interest credits, corrections, one-off receipts).
type ManualEntry struct {
	EntryID     string          `json:"entryID"`
	PeriodID    string          `json:"periodID"`
	Date        string          `json:"date"` // "YYYY-MM-DD"
	Type        EntryType       `json:"type"`
	Particulars string          `json:"particulars"`
	Instrument  string          `json:"instrument,omitempty"`
	InstNo      string          `json:"instNo,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// LedgerRow is one line of a reconciled statement, carrying the two
// bookkeeping columns explicitly: exactly one of Debit and Credit is
// non-zero, matching Type. Balance is the running balance after the row
// has been applied.
type LedgerRow struct {
	Date        string          `json:"date"`
	Type        EntryType       `json:"type"`
	Particulars string          `json:"particulars"`
	Instrument  string          `json:"instrument"`
	InstNo      string          `json:"instNo,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Source      RowSource       `json:"source"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerTotals summarizes a statement.
type LedgerTotals struct {
	Opening decimal.Decimal `json:"opening"`
	Credits decimal.Decimal `json:"credits"`
	Debits  decimal.Decimal `json:"debits"`
	Closing decimal.Decimal `json:"closing"`
}

// LedgerStatement is the full reconciled output for one period.
type LedgerStatement struct {
	PeriodID string       `json:"periodID"`
	Rows     []LedgerRow  `json:"rows"`
	Totals   LedgerTotals `json:"totals"`
}

// UnifiedTotals is the lifetime balance view aggregated across every
// period the society has recorded.
type UnifiedTotals struct {
	Opening        decimal.Decimal `json:"opening"` // earliest period's opening balance
	VerifiedIncome decimal.Decimal `json:"verifiedIncome"`
	ManualCredits  decimal.Decimal `json:"manualCredits"`
	Expenses       decimal.Decimal `json:"expenses"`
	ManualDebits   decimal.Decimal `json:"manualDebits"`
	Balance        decimal.Decimal `json:"balance"`
}

// PeriodStats is the collection snapshot for one period.
type PeriodStats struct {
	PeriodID  string          `json:"periodID"`
	Expected  int             `json:"expected"`
	Paid      int             `json:"paid"`
	Verified  int             `json:"verified"`
	Pending   int             `json:"pending"`
	Collected decimal.Decimal `json:"collected"`
}
