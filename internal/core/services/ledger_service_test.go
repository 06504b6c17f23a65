package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/core/services"
	"github.com/urmilakunj/society_backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo  *MockPeriodRepository
	mockPaymentRepo *MockPaymentRepository
	mockExpenseRepo *MockExpenseRepository
	mockLedgerRepo  *MockLedgerRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewLedgerService(
		suite.mockPeriodRepo,
		suite.mockPaymentRepo,
		suite.mockExpenseRepo,
		suite.mockLedgerRepo,
		suite.mockUserRepo,
	)
}

func (suite *LedgerServiceTestSuite) marchPeriod() *domain.Period {
	return &domain.Period{
		PeriodID: "2025-03",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}
}

func (suite *LedgerServiceTestSuite) TestGetStatement_Success() {
	ctx := context.Background()
	period := suite.marchPeriod()
	iso := "2025-03-05"

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-03").Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return([]domain.Payment{
		{PeriodID: "2025-03", FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: &domain.Timestamp{ISO: iso}},
	}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByDatePrefix", ctx, "2025-03").Return([]domain.Expense{
		{ExpenseID: "e1", Date: "2025-03-12", Title: "Cleaning", Category: "Housekeeping", Amount: decimal.NewFromInt(200)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListManualEntriesByPeriod", ctx, "2025-03").Return([]domain.ManualEntry{}, nil).Once()

	stmt, err := suite.service.GetStatement(ctx, "2025-03")

	suite.Require().NoError(err)
	suite.Require().NotNil(stmt)
	suite.Len(stmt.Rows, 2)
	suite.True(stmt.Totals.Opening.Equal(decimal.NewFromInt(1000)))
	suite.True(stmt.Totals.Credits.Equal(decimal.NewFromInt(500)))
	suite.True(stmt.Totals.Debits.Equal(decimal.NewFromInt(200)))
	suite.True(stmt.Totals.Closing.Equal(decimal.NewFromInt(1300)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetStatement_OpeningBalanceFailureDegradesToZero() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-03").Return(decimal.Zero, assert.AnError).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return([]domain.Payment{}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByDatePrefix", ctx, "2025-03").Return([]domain.Expense{}, nil).Once()
	suite.mockLedgerRepo.On("ListManualEntriesByPeriod", ctx, "2025-03").Return([]domain.ManualEntry{}, nil).Once()

	stmt, err := suite.service.GetStatement(ctx, "2025-03")

	suite.Require().NoError(err)
	suite.True(stmt.Totals.Opening.IsZero())
	suite.True(stmt.Totals.Closing.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetStatement_PeriodNotFound() {
	ctx := context.Background()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2030-01").Return(nil, apperrors.ErrNotFound).Once()

	stmt, err := suite.service.GetStatement(ctx, "2030-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(stmt)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "ListPaymentsByPeriod", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetStatement_PaymentFetchFailureIsFatal() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-03").Return(decimal.Zero, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return(nil, assert.AnError).Once()

	stmt, err := suite.service.GetStatement(ctx, "2025-03")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(stmt)
}

func (suite *LedgerServiceTestSuite) TestGetPeriodStats_Success() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return([]domain.Payment{
		{PeriodID: "2025-03", FlatNo: "A-101", Paid: true, Verified: true},
		{PeriodID: "2025-03", FlatNo: "A-102", Paid: true, Verified: false},
		{PeriodID: "2025-03", FlatNo: "A-103", Paid: false, Verified: false},
	}, nil).Once()
	suite.mockUserRepo.On("CountResidentFlats", ctx).Return(10, nil).Once()

	stats, err := suite.service.GetPeriodStats(ctx, "2025-03")

	suite.Require().NoError(err)
	suite.Equal(10, stats.Expected)
	suite.Equal(2, stats.Paid)
	suite.Equal(1, stats.Verified)
	suite.Equal(8, stats.Pending)
	suite.True(stats.Collected.Equal(decimal.NewFromInt(500)))
}

func (suite *LedgerServiceTestSuite) TestGetPeriodStats_RosterFailureFallsBackToPayments() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return([]domain.Payment{
		{PeriodID: "2025-03", FlatNo: "A-101", Paid: true, Verified: true},
		{PeriodID: "2025-03", FlatNo: "A-102", Paid: false, Verified: false},
	}, nil).Once()
	suite.mockUserRepo.On("CountResidentFlats", ctx).Return(0, assert.AnError).Once()

	stats, err := suite.service.GetPeriodStats(ctx, "2025-03")

	suite.Require().NoError(err)
	suite.Equal(2, stats.Expected)
	suite.Equal(1, stats.Pending)
}

func (suite *LedgerServiceTestSuite) TestCreateManualEntry_Success() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockLedgerRepo.On("SaveManualEntry", ctx, mock.MatchedBy(func(e domain.ManualEntry) bool {
		return e.PeriodID == "2025-03" &&
			e.Type == domain.EntryTypeCredit &&
			e.Particulars == "Interest credit" &&
			e.Amount.Equal(decimal.NewFromInt(50)) &&
			e.EntryID != "" &&
			e.CreatedBy == "admin-1"
	})).Return(nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, "2025-03", dto.CreateManualEntryRequest{
		Date:        "2025-03-15",
		Type:        "Cr",
		Particulars: "Interest credit",
		Instrument:  "NEFT",
		Amount:      decimal.NewFromInt(50),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("2025-03", entry.PeriodID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateManualEntry_ZeroAmount() {
	ctx := context.Background()
	period := suite.marchPeriod()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, "2025-03", dto.CreateManualEntryRequest{
		Date:        "2025-03-15",
		Type:        "Dr",
		Particulars: "Bank charges",
		Amount:      decimal.Zero,
	}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveManualEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSetOpeningBalance_PeriodNotFound() {
	ctx := context.Background()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2030-01").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetOpeningBalance(ctx, "2030-01", decimal.NewFromInt(100), "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SetOpeningBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestExportStatementCSV_Layout() {
	ctx := context.Background()
	period := suite.marchPeriod()
	iso := "2025-03-05"

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, "2025-03").Return(period, nil).Once()
	suite.mockLedgerRepo.On("FindOpeningBalance", ctx, "2025-03").Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, "2025-03").Return([]domain.Payment{
		{PeriodID: "2025-03", FlatNo: "A-101", Paid: true, Verified: true, UpdatedAt: &domain.Timestamp{ISO: iso}},
	}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByDatePrefix", ctx, "2025-03").Return([]domain.Expense{}, nil).Once()
	suite.mockLedgerRepo.On("ListManualEntriesByPeriod", ctx, "2025-03").Return([]domain.ManualEntry{}, nil).Once()

	data, err := suite.service.ExportStatementCSV(ctx, "2025-03")

	suite.Require().NoError(err)
	out := string(data)
	suite.Contains(out, "Month,Date,Type,Particulars,Instrument,Inst No,Debit,Credit,Balance,Source")
	suite.Contains(out, "Maintenance - Flat A-101")
	suite.Contains(out, "Opening,1000")
	suite.Contains(out, "Total Credits,500")
	suite.Contains(out, "Closing,1500")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
