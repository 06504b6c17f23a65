package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urmilakunj/society_backend/internal/core/domain"
)

var testNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func tsISO(s string) *domain.Timestamp { return &domain.Timestamp{ISO: s} }

func testPeriod() domain.Period {
	return domain.Period{
		PeriodID: "2025-03",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}
}

func TestReconcile_EmptyPeriod(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.NewFromInt(1200),
		Now:     testNow,
	})

	assert.Empty(t, stmt.Rows)
	assert.True(t, stmt.Totals.Opening.Equal(stmt.Totals.Closing), "closing must equal opening with no rows")
	assert.True(t, stmt.Totals.Credits.IsZero())
	assert.True(t, stmt.Totals.Debits.IsZero())
}

func TestReconcile_ExcludesUnverifiedPayments(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Payments: []domain.Payment{
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
			{FlatNo: "A-102", Paid: true, Verified: false, UpdatedAt: tsISO("2025-03-06")},
			{FlatNo: "A-103", Paid: false, Verified: false},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Maintenance - Flat A-101", stmt.Rows[0].Particulars)
}

func TestReconcile_PaymentAmountFallsBackToPeriodDue(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Payments: []domain.Payment{
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
			{FlatNo: "A-102", Paid: true, Verified: true, Amount: decPtr(decimal.NewFromInt(750)), UpdatedAt: tsISO("2025-03-06")},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 2)
	assert.True(t, stmt.Rows[0].Credit.Equal(decimal.NewFromInt(500)), "missing amount uses the period due")
	assert.True(t, stmt.Rows[1].Credit.Equal(decimal.NewFromInt(750)), "explicit amount wins")
}

func TestReconcile_RowsCarryDebitAndCreditColumns(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Payments: []domain.Payment{
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Date: "2025-03-14", Title: "Plumbing", Amount: decimal.NewFromInt(200)},
		},
		ManualEntries: []domain.ManualEntry{
			{EntryID: "m1", Date: "2025-03-20", Type: domain.EntryTypeDebit, Particulars: "Bank charges", Amount: decimal.NewFromInt(10)},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 3)
	for _, r := range stmt.Rows {
		if r.Type == domain.EntryTypeCredit {
			assert.True(t, r.Debit.IsZero(), "credit row %q must carry a zero debit column", r.Particulars)
			assert.False(t, r.Credit.IsZero(), "credit row %q must carry its amount in the credit column", r.Particulars)
		} else {
			assert.False(t, r.Debit.IsZero(), "debit row %q must carry its amount in the debit column", r.Particulars)
			assert.True(t, r.Credit.IsZero(), "debit row %q must carry a zero credit column", r.Particulars)
		}
	}
}

func TestReconcile_PaymentInstrumentDefaults(t *testing.T) {
	tests := []struct {
		name           string
		payment        domain.Payment
		wantInstrument string
		wantInstNo     string
	}{
		{
			name:           "mode wins over refNo",
			payment:        domain.Payment{FlatNo: "1", Paid: true, Verified: true, Mode: "UPI", RefNo: strPtr("TXN42")},
			wantInstrument: "UPI",
			wantInstNo:     "TXN42",
		},
		{
			name:           "refNo without mode implies online",
			payment:        domain.Payment{FlatNo: "2", Paid: true, Verified: true, RefNo: strPtr("TXN43")},
			wantInstrument: "Online",
			wantInstNo:     "TXN43",
		},
		{
			name:           "bare payment implies cash",
			payment:        domain.Payment{FlatNo: "3", Paid: true, Verified: true},
			wantInstrument: "Cash",
			wantInstNo:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := Reconcile(Sources{
				Period:   testPeriod(),
				Payments: []domain.Payment{tt.payment},
				Now:      testNow,
			})
			require.Len(t, stmt.Rows, 1)
			assert.Equal(t, tt.wantInstrument, stmt.Rows[0].Instrument)
			assert.Equal(t, tt.wantInstNo, stmt.Rows[0].InstNo)
		})
	}
}

func TestReconcile_ExpensesFilteredByPeriod(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Date: "2025-03-14", Title: "Plumbing", Category: "Repairs", Amount: decimal.NewFromInt(200)},
			{ExpenseID: "e2", Date: "2025-02-28", Title: "Diwali lights", Amount: decimal.NewFromInt(900)},
			{ExpenseID: "e3", Date: "2025-04-01", Title: "Security", Amount: decimal.NewFromInt(300)},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Plumbing (Repairs)", stmt.Rows[0].Particulars)
	assert.Equal(t, "Cash", stmt.Rows[0].Instrument)
	assert.Equal(t, domain.EntryTypeDebit, stmt.Rows[0].Type)
}

func TestReconcile_Ordering(t *testing.T) {
	// Same date everywhere so the tiebreaks decide: credits before
	// debits, manual before auto, then particulars.
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Payments: []domain.Payment{
			{FlatNo: "B-202", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-10")},
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-10")},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Date: "2025-03-10", Title: "Cleaning", Amount: decimal.NewFromInt(100)},
		},
		ManualEntries: []domain.ManualEntry{
			{EntryID: "m1", Date: "2025-03-10", Type: domain.EntryTypeCredit, Particulars: "Interest credit", Amount: decimal.NewFromInt(50)},
			{EntryID: "m2", Date: "2025-03-10", Type: domain.EntryTypeDebit, Particulars: "Bank charges", Amount: decimal.NewFromInt(10)},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 5)
	got := make([]string, 0, len(stmt.Rows))
	for _, r := range stmt.Rows {
		got = append(got, r.Particulars)
	}
	assert.Equal(t, []string{
		"Interest credit",
		"Maintenance - Flat A-101",
		"Maintenance - Flat B-202",
		"Bank charges",
		"Cleaning",
	}, got)
}

func TestReconcile_ManualBeforeAutoOnEqualDateAndType(t *testing.T) {
	// Alphabetical order would put the auto row first here, so this
	// only passes when the source rule outranks the particulars
	// tiebreak.
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.Zero,
		Payments: []domain.Payment{
			{FlatNo: "101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
		},
		ManualEntries: []domain.ManualEntry{
			{EntryID: "m1", Date: "2025-03-05", Type: domain.EntryTypeCredit, Particulars: "Rent", Amount: decimal.NewFromInt(800)},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 2)
	assert.Equal(t, "Rent", stmt.Rows[0].Particulars)
	assert.Equal(t, domain.RowSourceManual, stmt.Rows[0].Source)
	assert.Equal(t, "Maintenance - Flat 101", stmt.Rows[1].Particulars)
	assert.Equal(t, domain.RowSourceAuto, stmt.Rows[1].Source)
}

func TestReconcile_RunningBalanceAndTotals(t *testing.T) {
	stmt := Reconcile(Sources{
		Period:  testPeriod(),
		Opening: decimal.NewFromInt(1000),
		Payments: []domain.Payment{
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Date: "2025-03-14", Title: "Plumbing", Amount: decimal.NewFromInt(200)},
		},
		ManualEntries: []domain.ManualEntry{
			{EntryID: "m1", Date: "2025-03-20", Type: domain.EntryTypeCredit, Particulars: "Interest", Amount: decimal.NewFromInt(50)},
		},
		Now: testNow,
	})

	require.Len(t, stmt.Rows, 3)
	assert.True(t, stmt.Rows[0].Balance.Equal(decimal.NewFromInt(1500)))
	assert.True(t, stmt.Rows[1].Balance.Equal(decimal.NewFromInt(1300)))
	assert.True(t, stmt.Rows[2].Balance.Equal(decimal.NewFromInt(1350)))

	assert.True(t, stmt.Totals.Credits.Equal(decimal.NewFromInt(550)))
	assert.True(t, stmt.Totals.Debits.Equal(decimal.NewFromInt(200)))
	assert.True(t, stmt.Totals.Closing.Equal(decimal.NewFromInt(1350)))
	assert.True(t, stmt.Rows[len(stmt.Rows)-1].Balance.Equal(stmt.Totals.Closing),
		"last row balance must equal the closing total")
}

func TestReconcile_Deterministic(t *testing.T) {
	src := Sources{
		Period:  testPeriod(),
		Opening: decimal.NewFromInt(100),
		Payments: []domain.Payment{
			{FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
			{FlatNo: "A-102", Paid: true, Verified: true, UpdatedAt: tsISO("2025-03-05")},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Date: "2025-03-05", Title: "Cleaning", Amount: decimal.NewFromInt(75)},
		},
		Now: testNow,
	}

	first := Reconcile(src)
	second := Reconcile(src)
	assert.Equal(t, first, second)
}

func TestReconcile_PaymentDateVariants(t *testing.T) {
	epoch := int64(1741132800) // 2025-03-05 UTC
	tests := []struct {
		name     string
		ts       *domain.Timestamp
		wantDate string
	}{
		{"epoch seconds", &domain.Timestamp{Seconds: &epoch}, "2025-03-05"},
		{"iso string", tsISO("2025-03-07T09:30:00Z"), "2025-03-07"},
		{"plain date", tsISO("2025-03-08"), "2025-03-08"},
		{"missing falls back to now", nil, "2025-03-20"},
		{"garbage falls back to now", tsISO("not-a-date"), "2025-03-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := Reconcile(Sources{
				Period:   testPeriod(),
				Payments: []domain.Payment{{FlatNo: "1", Paid: true, Verified: true, UpdatedAt: tt.ts}},
				Now:      testNow,
			})
			require.Len(t, stmt.Rows, 1)
			assert.Equal(t, tt.wantDate, stmt.Rows[0].Date)
		})
	}
}
