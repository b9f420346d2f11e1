package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/handlers"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ZakatService ---
type MockZakatService struct {
	mock.Mock
}

func (m *MockZakatService) GetConfig(ctx context.Context, userID string) (*domain.ZakatConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatConfig), args.Error(1)
}

func (m *MockZakatService) SaveConfig(ctx context.Context, req dto.SaveZakatConfigRequest, userID string) (*domain.ZakatConfig, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatConfig), args.Error(1)
}

func (m *MockZakatService) EnsureCycleForCurrentAnniversary(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ZakatCycle), args.Bool(1), args.Error(2)
}

func (m *MockZakatService) RecomputeCycle(ctx context.Context, cycle domain.ZakatCycle) (*domain.ZakatCycle, error) {
	args := m.Called(ctx, cycle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCycle), args.Error(1)
}

func (m *MockZakatService) GenerateNextCycle(ctx context.Context, userID string) (*domain.ZakatCycle, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ZakatCycle), args.Bool(1), args.Error(2)
}

func (m *MockZakatService) SweepPendingCycles(ctx context.Context) (dto.SweepResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.SweepResult), args.Error(1)
}

func (m *MockZakatService) Snapshot(ctx context.Context, userID string, asOf time.Time) (*domain.ZakatSnapshot, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatSnapshot), args.Error(1)
}

func (m *MockZakatService) ListCycles(ctx context.Context, userID string) ([]domain.ZakatCycle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZakatCycle), args.Error(1)
}

func (m *MockZakatService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.ZakatPayment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatPayment), args.Error(1)
}

func (m *MockZakatService) ListPayments(ctx context.Context, userID string) ([]domain.ZakatPayment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZakatPayment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ZakatSvcFacade = (*MockZakatService)(nil)

// --- Test Suite ---
type ZakatHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockZakatService *MockZakatService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ZakatHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "azms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ZakatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockZakatService = new(MockZakatService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterZakatRoutes(v1, suite.mockZakatService)
}

// --- Test Cases ---

func (suite *ZakatHandlerTestSuite) TestSweepCycles_Success() {
	userID := uuid.NewString()
	suite.mockZakatService.On("SweepPendingCycles", mock.Anything).Return(dto.SweepResult{
		UsersProcessed:  3,
		CyclesCreated:   1,
		CyclesMarkedDue: 2,
		Failures:        0,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/sweep", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var result dto.SweepResult
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(suite.T(), 3, result.UsersProcessed)
	assert.Equal(suite.T(), 1, result.CyclesCreated)
	assert.Equal(suite.T(), 2, result.CyclesMarkedDue)
	suite.mockZakatService.AssertExpectations(suite.T())
}

func (suite *ZakatHandlerTestSuite) TestSweepCycles_RequiresAuth() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/sweep", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockZakatService.AssertNotCalled(suite.T(), "SweepPendingCycles", mock.Anything)
}

func (suite *ZakatHandlerTestSuite) TestSweepCycles_ServiceErrorIs500() {
	userID := uuid.NewString()
	suite.mockZakatService.On("SweepPendingCycles", mock.Anything).
		Return(dto.SweepResult{}, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/sweep", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.mockZakatService.AssertExpectations(suite.T())
}

func TestZakatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ZakatHandlerTestSuite))
}
