// Package ledger implements the reconciliation engine. It is a pure
// package: every function maps explicit inputs to outputs with no
// storage, clock, or network access, so statements are reproducible
// from the same source records.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// Sources bundles everything a single-period reconciliation reads.
// The caller (the service layer) is responsible for fetching records;
// the engine only merges them.
type Sources struct {
	Period        domain.Period
	Opening       decimal.Decimal
	Payments      []domain.Payment
	Expenses      []domain.Expense
	ManualEntries []domain.ManualEntry
	// Now anchors date fallbacks for records with missing or broken
	// timestamps. Callers pass time.Now(); tests pass a fixed instant.
	Now time.Time
}

// paymentRows projects verified payments into credit rows. Records that
// are not both paid and verified are excluded entirely; they never reach
// the statement.
func paymentRows(src Sources) []domain.LedgerRow {
	rows := make([]domain.LedgerRow, 0, len(src.Payments))
	for _, p := range src.Payments {
		if !p.Paid || !p.Verified {
			continue
		}
		amount := src.Period.Amount
		if p.Amount != nil {
			amount = *p.Amount
		}
		instrument := p.Mode
		if instrument == "" {
			if p.RefNo != nil && *p.RefNo != "" {
				instrument = "Online"
			} else {
				instrument = "Cash"
			}
		}
		instNo := ""
		if p.RefNo != nil {
			instNo = *p.RefNo
		}
		rows = append(rows, domain.LedgerRow{
			Date:        p.UpdatedAt.DateString(src.Now),
			Type:        domain.EntryTypeCredit,
			Particulars: fmt.Sprintf("Maintenance - Flat %s", p.FlatNo),
			Instrument:  instrument,
			InstNo:      instNo,
			Debit:       decimal.Zero,
			Credit:      amount,
			Source:      domain.RowSourceAuto,
		})
	}
	return rows
}

// expenseRows projects the expenses that fall inside the period into
// debit rows. Bucketing is by date prefix against the period id, so an
// expense dated "2025-03-14" belongs to period "2025-03".
func expenseRows(src Sources) []domain.LedgerRow {
	rows := make([]domain.LedgerRow, 0, len(src.Expenses))
	for _, e := range src.Expenses {
		if !src.Period.ContainsDate(e.Date) {
			continue
		}
		particulars := e.Title
		if e.Category != "" {
			particulars = fmt.Sprintf("%s (%s)", e.Title, e.Category)
		}
		instrument := e.Mode
		if instrument == "" {
			instrument = "Cash"
		}
		date := e.Date
		if len(date) > 10 {
			date = date[:10]
		}
		rows = append(rows, domain.LedgerRow{
			Date:        date,
			Type:        domain.EntryTypeDebit,
			Particulars: particulars,
			Instrument:  instrument,
			InstNo:      e.InstNo,
			Debit:       e.Amount,
			Credit:      decimal.Zero,
			Source:      domain.RowSourceAuto,
		})
	}
	return rows
}

// manualRows passes admin-entered adjustments through unchanged. The
// stored amount lands in the column its type names.
func manualRows(src Sources) []domain.LedgerRow {
	rows := make([]domain.LedgerRow, 0, len(src.ManualEntries))
	for _, m := range src.ManualEntries {
		debit := decimal.Zero
		credit := decimal.Zero
		if m.Type == domain.EntryTypeDebit {
			debit = m.Amount
		} else {
			credit = m.Amount
		}
		rows = append(rows, domain.LedgerRow{
			Date:        m.Date,
			Type:        m.Type,
			Particulars: m.Particulars,
			Instrument:  m.Instrument,
			InstNo:      m.InstNo,
			Debit:       debit,
			Credit:      credit,
			Source:      domain.RowSourceManual,
		})
	}
	return rows
}
