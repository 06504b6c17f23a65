package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// Reconcile merges the period's sources into a chronologically ordered
// statement with a running balance.
//
// Ordering is total and deterministic: date ascending (ISO strings
// compare lexicographically), then credits before debits, then manual
// rows before auto rows, then particulars ascending. Re-running with
// the same inputs always yields the same statement.
func Reconcile(src Sources) domain.LedgerStatement {
	rows := paymentRows(src)
	rows = append(rows, expenseRows(src)...)
	rows = append(rows, manualRows(src)...)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Type != b.Type {
			return a.Type == domain.EntryTypeCredit
		}
		if a.Source != b.Source {
			return a.Source == domain.RowSourceManual
		}
		return a.Particulars < b.Particulars
	})

	running := src.Opening
	credits := decimal.Zero
	debits := decimal.Zero
	for i := range rows {
		running = running.Add(rows[i].Credit).Sub(rows[i].Debit)
		credits = credits.Add(rows[i].Credit)
		debits = debits.Add(rows[i].Debit)
		rows[i].Balance = running
	}

	return domain.LedgerStatement{
		PeriodID: src.Period.PeriodID,
		Rows:     rows,
		Totals: domain.LedgerTotals{
			Opening: src.Opening,
			Credits: credits,
			Debits:  debits,
			Closing: src.Opening.Add(credits).Sub(debits),
		},
	}
}
