package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/urmilakunj/society_backend/internal/apperrors"
	"github.com/urmilakunj/society_backend/internal/core/domain"
	portssvc "github.com/urmilakunj/society_backend/internal/core/ports/services"
	"github.com/urmilakunj/society_backend/internal/dto"
	"github.com/urmilakunj/society_backend/internal/handlers"
	"github.com/urmilakunj/society_backend/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetStatement(ctx context.Context, periodID string) (*domain.LedgerStatement, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStatement), args.Error(1)
}
func (m *MockLedgerService) GetPeriodStats(ctx context.Context, periodID string) (*domain.PeriodStats, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodStats), args.Error(1)
}
func (m *MockLedgerService) GetOpeningBalance(ctx context.Context, periodID string) (decimal.Decimal, error) {
	args := m.Called(ctx, periodID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) ListManualEntries(ctx context.Context, periodID string) ([]domain.ManualEntry, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualEntry), args.Error(1)
}
func (m *MockLedgerService) ExportStatementCSV(ctx context.Context, periodID string) ([]byte, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockLedgerService) ExportStatementXLSX(ctx context.Context, periodID string) ([]byte, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockLedgerService) SetOpeningBalance(ctx context.Context, periodID string, amount decimal.Decimal, updaterUserID string) error {
	args := m.Called(ctx, periodID, amount, updaterUserID)
	return args.Error(0)
}
func (m *MockLedgerService) CreateManualEntry(ctx context.Context, periodID string, req dto.CreateManualEntryRequest, creatorUserID string) (*domain.ManualEntry, error) {
	args := m.Called(ctx, periodID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualEntry), args.Error(1)
}
func (m *MockLedgerService) UpdateManualEntry(ctx context.Context, periodID, entryID string, req dto.UpdateManualEntryRequest, updaterUserID string) (*domain.ManualEntry, error) {
	args := m.Called(ctx, periodID, entryID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualEntry), args.Error(1)
}
func (m *MockLedgerService) DeleteManualEntry(ctx context.Context, periodID, entryID string) error {
	args := m.Called(ctx, periodID, entryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID, role string) string {
	claims := middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "society-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_Success() {
	stmt := &domain.LedgerStatement{
		PeriodID: "2025-03",
		Rows: []domain.LedgerRow{
			{
				Date:        "2025-03-05",
				Type:        domain.EntryTypeCredit,
				Particulars: "Maintenance - Flat A-101",
				Instrument:  "UPI",
				Debit:       decimal.Zero,
				Credit:      decimal.NewFromInt(500),
				Source:      domain.RowSourceAuto,
				Balance:     decimal.NewFromInt(1500),
			},
		},
		Totals: domain.LedgerTotals{
			Opening: decimal.NewFromInt(1000),
			Credits: decimal.NewFromInt(500),
			Debits:  decimal.Zero,
			Closing: decimal.NewFromInt(1500),
		},
	}

	suite.mockLedgerService.On("GetStatement", mock.Anything, "2025-03").Return(stmt, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/periods/2025-03/statement", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "resident"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03", resp.PeriodID)
	suite.Require().Len(resp.Rows, 1)
	suite.Equal("Maintenance - Flat A-101", resp.Rows[0].Particulars)
	suite.True(resp.Rows[0].Credit.Equal(decimal.NewFromInt(500)), "credit column must survive serialization")
	suite.True(resp.Rows[0].Debit.IsZero(), "debit column must be present and zero on a credit row")
	suite.True(resp.Totals.Closing.Equal(decimal.NewFromInt(1500)))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_PeriodNotFound() {
	suite.mockLedgerService.On("GetStatement", mock.Anything, "2030-01").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/periods/2030-01/statement", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "resident"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetStatement_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/periods/2025-03/statement", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestExportStatement_CSV() {
	csvData := []byte("Month,Date,Type\n2025-03,2025-03-05,Cr\n")
	suite.mockLedgerService.On("ExportStatementCSV", mock.Anything, "2025-03").Return(csvData, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/periods/2025-03/statement/export?format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "resident"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "ledger-2025-03.csv")
	suite.Equal(csvData, w.Body.Bytes())
}

func (suite *LedgerHandlerTestSuite) TestExportStatement_UnsupportedFormat() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/periods/2025-03/statement/export?format=pdf", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "resident"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_AdminOnly() {
	body := `{"date":"2025-03-15","type":"Cr","particulars":"Interest credit","amount":"50"}`

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/periods/2025-03/entries", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", "resident"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateManualEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_Success() {
	entry := &domain.ManualEntry{
		EntryID:     "m1",
		PeriodID:    "2025-03",
		Date:        "2025-03-15",
		Type:        domain.EntryTypeCredit,
		Particulars: "Interest credit",
		Amount:      decimal.NewFromInt(50),
	}
	suite.mockLedgerService.On("CreateManualEntry",
		mock.Anything,
		"2025-03",
		mock.MatchedBy(func(r dto.CreateManualEntryRequest) bool {
			return r.Type == "Cr" && r.Particulars == "Interest credit" && r.Amount.Equal(decimal.NewFromInt(50))
		}),
		"admin-1",
	).Return(entry, nil).Once()

	body := `{"date":"2025-03-15","type":"Cr","particulars":"Interest credit","amount":"50"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/periods/2025-03/entries", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin-1", "admin"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ManualEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("m1", resp.EntryID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestSetOpeningBalance_Success() {
	suite.mockLedgerService.On("SetOpeningBalance",
		mock.Anything, "2025-03",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1000)) }),
		"admin-1",
	).Return(nil).Once()

	body := `{"amount":"1000"}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/periods/2025-03/opening-balance", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("admin-1", "admin"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
