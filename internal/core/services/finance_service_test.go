package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/urmilakunj/society_backend/internal/core/domain"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/core/services"
)

type FinanceServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo  *MockPeriodRepository
	mockPaymentRepo *MockPaymentRepository
	mockExpenseRepo *MockExpenseRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.FinanceSvcFacade
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewFinanceService(
		suite.mockPeriodRepo,
		suite.mockPaymentRepo,
		suite.mockExpenseRepo,
		suite.mockLedgerRepo,
	)
}

func (suite *FinanceServiceTestSuite) TestGetUnifiedTotals_Success() {
	ctx := context.Background()
	amt := decimal.NewFromInt(600)

	// Newest first; 2025-02 is the earliest period and anchors the
	// lifetime opening balance.
	suite.mockPeriodRepo.On("ListPeriods", ctx).Return([]domain.Period{
		{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)},
		{PeriodID: "2025-02", Amount: decimal.NewFromInt(500)},
	}, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-02").Return(decimal.NewFromInt(500), nil).Once()
	suite.mockPaymentRepo.On("ListAllPayments", ctx).Return([]domain.Payment{
		{PeriodID: "2025-02", FlatNo: "A-101", Paid: true, Verified: true},
		{PeriodID: "2025-03", FlatNo: "A-101", Paid: true, Verified: true, Amount: &amt},
		{PeriodID: "2025-03", FlatNo: "A-102", Paid: true, Verified: false},
	}, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{
		{ExpenseID: "e1", Date: "2025-02-14", Title: "Cleaning", Amount: decimal.NewFromInt(200)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListAllManualEntries", ctx).Return([]domain.ManualEntry{
		{EntryID: "m1", PeriodID: "2025-03", Type: domain.EntryTypeCredit, Amount: decimal.NewFromInt(100)},
		{EntryID: "m2", PeriodID: "2025-03", Type: domain.EntryTypeDebit, Amount: decimal.NewFromInt(50)},
	}, nil).Once()

	totals, err := suite.service.GetUnifiedTotals(ctx)

	suite.Require().NoError(err)
	suite.True(totals.Opening.Equal(decimal.NewFromInt(500)))
	// 500 (period due) + 600 (explicit amount), unverified excluded.
	suite.True(totals.VerifiedIncome.Equal(decimal.NewFromInt(1100)))
	suite.True(totals.Expenses.Equal(decimal.NewFromInt(200)))
	suite.True(totals.ManualCredits.Equal(decimal.NewFromInt(100)))
	suite.True(totals.ManualDebits.Equal(decimal.NewFromInt(50)))
	// 500 + 1100 + 100 - 200 - 50
	suite.True(totals.Balance.Equal(decimal.NewFromInt(1450)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestGetUnifiedTotals_StreamFailuresDegradeToZero() {
	ctx := context.Background()

	suite.mockPeriodRepo.On("ListPeriods", ctx).Return([]domain.Period{
		{PeriodID: "2025-03", Amount: decimal.NewFromInt(500)},
	}, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-03").Return(decimal.Zero, assert.AnError).Once()
	suite.mockPaymentRepo.On("ListAllPayments", ctx).Return(nil, assert.AnError).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{
		{ExpenseID: "e1", Date: "2025-03-14", Title: "Cleaning", Amount: decimal.NewFromInt(200)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListAllManualEntries", ctx).Return(nil, assert.AnError).Once()

	totals, err := suite.service.GetUnifiedTotals(ctx)

	suite.Require().NoError(err)
	suite.True(totals.Opening.IsZero())
	suite.True(totals.VerifiedIncome.IsZero())
	suite.True(totals.ManualCredits.IsZero())
	suite.True(totals.ManualDebits.IsZero())
	suite.True(totals.Expenses.Equal(decimal.NewFromInt(200)))
	suite.True(totals.Balance.Equal(decimal.NewFromInt(-200)))
}

func (suite *FinanceServiceTestSuite) TestGetUnifiedTotals_NoPeriodsSkipsOpeningLookup() {
	ctx := context.Background()

	suite.mockPeriodRepo.On("ListPeriods", ctx).Return([]domain.Period{}, nil).Once()
	suite.mockPaymentRepo.On("ListAllPayments", ctx).Return([]domain.Payment{}, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{}, nil).Once()
	suite.mockLedgerRepo.On("ListAllManualEntries", ctx).Return([]domain.ManualEntry{}, nil).Once()

	totals, err := suite.service.GetUnifiedTotals(ctx)

	suite.Require().NoError(err)
	suite.True(totals.Balance.IsZero())
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindOpeningBalance", ctx, "2025-03")
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
