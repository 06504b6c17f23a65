package dto

import (
	"github.com/shopspring/decimal"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

// LedgerRowResponse defines one line of a reconciled statement. Debit
// and credit are separate columns; exactly one is non-zero per row.
type LedgerRowResponse struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Particulars string          `json:"particulars"`
	Instrument  string          `json:"instrument"`
	InstNo      string          `json:"instNo,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Source      string          `json:"source"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerTotalsResponse defines the statement summary figures.
type LedgerTotalsResponse struct {
	Opening decimal.Decimal `json:"opening"`
	Credits decimal.Decimal `json:"credits"`
	Debits  decimal.Decimal `json:"debits"`
	Closing decimal.Decimal `json:"closing"`
}

// LedgerStatementResponse defines the full reconciled statement for a period.
type LedgerStatementResponse struct {
	PeriodID string               `json:"periodID"`
	Rows     []LedgerRowResponse  `json:"rows"`
	Totals   LedgerTotalsResponse `json:"totals"`
}

// SetOpeningBalanceRequest defines the opening balance write for a period.
type SetOpeningBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// OpeningBalanceResponse defines the stored opening balance of a period.
type OpeningBalanceResponse struct {
	PeriodID string          `json:"periodID"`
	Amount   decimal.Decimal `json:"amount"`
}

// PeriodStatsResponse defines the collection snapshot for a period.
type PeriodStatsResponse struct {
	PeriodID  string          `json:"periodID"`
	Expected  int             `json:"expected"`
	Paid      int             `json:"paid"`
	Verified  int             `json:"verified"`
	Pending   int             `json:"pending"`
	Collected decimal.Decimal `json:"collected"`
}

// ToLedgerStatementResponse converts a domain.LedgerStatement to LedgerStatementResponse DTO.
func ToLedgerStatementResponse(s *domain.LedgerStatement) LedgerStatementResponse {
	rows := make([]LedgerRowResponse, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = LedgerRowResponse{
			Date:        r.Date,
			Type:        string(r.Type),
			Particulars: r.Particulars,
			Instrument:  r.Instrument,
			InstNo:      r.InstNo,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Source:      string(r.Source),
			Balance:     r.Balance,
		}
	}
	return LedgerStatementResponse{
		PeriodID: s.PeriodID,
		Rows:     rows,
		Totals: LedgerTotalsResponse{
			Opening: s.Totals.Opening,
			Credits: s.Totals.Credits,
			Debits:  s.Totals.Debits,
			Closing: s.Totals.Closing,
		},
	}
}

// ToPeriodStatsResponse converts a domain.PeriodStats to PeriodStatsResponse DTO.
func ToPeriodStatsResponse(s *domain.PeriodStats) PeriodStatsResponse {
	return PeriodStatsResponse{
		PeriodID:  s.PeriodID,
		Expected:  s.Expected,
		Paid:      s.Paid,
		Verified:  s.Verified,
		Pending:   s.Pending,
		Collected: s.Collected,
	}
}
