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

// MockNoticeService mocks the notice writer used by period creation.
type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) CreateNotice(ctx context.Context, req dto.CreateNoticeRequest, creatorUserID string) (*domain.Notice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeService) PublishDuesNotice(ctx context.Context, period domain.Period, creatorUserID string) (*domain.Notice, error) {
	args := m.Called(ctx, period, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeService) DeleteNotice(ctx context.Context, noticeID string) error {
	args := m.Called(ctx, noticeID)
	return args.Error(0)
}

type PeriodServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockPeriodRepository
	mockNoticeSvc *MockNoticeService
	service       portssvc.PeriodSvcFacade
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodRepository)
	suite.mockNoticeSvc = new(MockNoticeService)
	suite.service = services.NewPeriodService(suite.mockRepo, suite.mockNoticeSvc)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		PeriodID: "2025-03",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}

	suite.mockRepo.On("SavePeriod", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.PeriodID == "2025-03" &&
			p.Amount.Equal(decimal.NewFromInt(500)) &&
			p.DueDate == "2025-03-10" &&
			p.CreatedBy == "admin-1"
	})).Return(nil).Once()
	suite.mockNoticeSvc.On("PublishDuesNotice", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.PeriodID == "2025-03"
	}), "admin-1").Return(&domain.Notice{NoticeID: "n1"}, nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.Equal("2025-03", period.PeriodID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNoticeSvc.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_InvalidPeriodID() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		PeriodID: "March25",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}

	period, err := suite.service.CreatePeriod(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(period)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		PeriodID: "2025-03",
		Amount:   decimal.Zero,
		DueDate:  "2025-03-10",
	}

	period, err := suite.service.CreatePeriod(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Duplicate() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		PeriodID: "2025-03",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}

	suite.mockRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.Period")).Return(apperrors.ErrDuplicate).Once()

	period, err := suite.service.CreatePeriod(ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(period)
	suite.mockNoticeSvc.AssertNotCalled(suite.T(), "PublishDuesNotice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_NoticeFailureStillReturnsPeriod() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		PeriodID: "2025-03",
		Amount:   decimal.NewFromInt(500),
		DueDate:  "2025-03-10",
	}

	suite.mockRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.Period")).Return(nil).Once()
	suite.mockNoticeSvc.On("PublishDuesNotice", ctx, mock.AnythingOfType("domain.Period"), "admin-1").
		Return(nil, assert.AnError).Once()

	period, err := suite.service.CreatePeriod(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.Equal("2025-03", period.PeriodID)
}

func (suite *PeriodServiceTestSuite) TestGetPeriodByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPeriodByID", ctx, "2030-01").Return(nil, apperrors.ErrNotFound).Once()

	period, err := suite.service.GetPeriodByID(ctx, "2030-01")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(period)
}

func (suite *PeriodServiceTestSuite) TestListPeriods_NilBecomesEmptySlice() {
	ctx := context.Background()
	suite.mockRepo.On("ListPeriods", ctx).Return(nil, nil).Once()

	periods, err := suite.service.ListPeriods(ctx)

	suite.Require().NoError(err)
	suite.NotNil(periods)
	suite.Empty(periods)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
