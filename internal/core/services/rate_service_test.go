package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRate(ctx context.Context, userID, assetKey string) (*domain.Rate, error) {
	args := m.Called(ctx, userID, assetKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListEffectiveRates(ctx context.Context, userID string) ([]domain.Rate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Rate Service Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateRepository
	service  portssvc.RateSvcFacade
	ctx      context.Context
	userID   string
}

func (s *RateServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockRateRepository)
	s.service = services.NewRateService(s.mockRepo, services.WithRateCacheTTL(time.Minute))
	s.ctx = context.Background()
	s.userID = "user-rates"
}

func (s *RateServiceTestSuite) TestUpsertRate_UserScoped() {
	req := dto.UpsertRateRequest{AssetKey: " gold ", Value: decimal.NewFromFloat(92.4)}

	s.mockRepo.On("SaveRate", s.ctx, mock.MatchedBy(func(r domain.Rate) bool {
		return r.AssetKey == "GOLD" &&
			r.OwnerUserID != nil && *r.OwnerUserID == s.userID &&
			r.Value.Equal(decimal.NewFromFloat(92.4))
	})).Return(nil).Once()

	rate, err := s.service.UpsertRate(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(rate)
	assert.Equal(s.T(), "GOLD", rate.AssetKey)
	s.Require().NotNil(rate.OwnerUserID)
	assert.Equal(s.T(), s.userID, *rate.OwnerUserID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestUpsertRate_GlobalHasNoOwner() {
	req := dto.UpsertRateRequest{AssetKey: "SILVER", Value: decimal.NewFromFloat(1.1), Global: true}

	s.mockRepo.On("SaveRate", s.ctx, mock.MatchedBy(func(r domain.Rate) bool {
		return r.AssetKey == "SILVER" && r.OwnerUserID == nil
	})).Return(nil).Once()

	rate, err := s.service.UpsertRate(s.ctx, req, s.userID)

	s.Require().NoError(err)
	assert.Nil(s.T(), rate.OwnerUserID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestUpsertRate_RejectsNonPositiveValue() {
	req := dto.UpsertRateRequest{AssetKey: "GOLD", Value: decimal.Zero}

	rate, err := s.service.UpsertRate(s.ctx, req, s.userID)

	s.Require().Error(err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrValidation))
	assert.Nil(s.T(), rate)
	s.mockRepo.AssertNotCalled(s.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (s *RateServiceTestSuite) TestResolveRateTable_CachesAcrossCalls() {
	rates := []domain.Rate{
		{AssetKey: "GOLD", Value: decimal.NewFromFloat(92.4)},
		{AssetKey: "SILVER", Value: decimal.NewFromFloat(1.1)},
	}
	s.mockRepo.On("ListEffectiveRates", s.ctx, s.userID).Return(rates, nil).Once()

	first, err := s.service.ResolveRateTable(s.ctx, s.userID)
	s.Require().NoError(err)
	second, err := s.service.ResolveRateTable(s.ctx, s.userID)
	s.Require().NoError(err)

	assert.Len(s.T(), first, 2)
	assert.True(s.T(), second["GOLD"].Equal(decimal.NewFromFloat(92.4)))
	s.mockRepo.AssertNumberOfCalls(s.T(), "ListEffectiveRates", 1)
}

func (s *RateServiceTestSuite) TestUpsertRate_InvalidatesCachedTable() {
	s.mockRepo.On("ListEffectiveRates", s.ctx, s.userID).
		Return([]domain.Rate{{AssetKey: "GOLD", Value: decimal.NewFromFloat(90)}}, nil).Once()
	_, err := s.service.ResolveRateTable(s.ctx, s.userID)
	s.Require().NoError(err)

	s.mockRepo.On("SaveRate", s.ctx, mock.AnythingOfType("domain.Rate")).Return(nil).Once()
	_, err = s.service.UpsertRate(s.ctx, dto.UpsertRateRequest{
		AssetKey: "GOLD",
		Value:    decimal.NewFromFloat(95),
	}, s.userID)
	s.Require().NoError(err)

	s.mockRepo.On("ListEffectiveRates", s.ctx, s.userID).
		Return([]domain.Rate{{AssetKey: "GOLD", Value: decimal.NewFromFloat(95)}}, nil).Once()
	table, err := s.service.ResolveRateTable(s.ctx, s.userID)

	s.Require().NoError(err)
	assert.True(s.T(), table["GOLD"].Equal(decimal.NewFromFloat(95)))
	s.mockRepo.AssertNumberOfCalls(s.T(), "ListEffectiveRates", 2)
}

func (s *RateServiceTestSuite) TestResolveRate_MissingKeyReturnsNotFound() {
	s.mockRepo.On("ListEffectiveRates", s.ctx, s.userID).
		Return([]domain.Rate{{AssetKey: "GOLD", Value: decimal.NewFromFloat(90)}}, nil).Once()

	value, err := s.service.ResolveRate(s.ctx, s.userID, "btc")

	s.Require().Error(err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrNotFound))
	assert.True(s.T(), value.IsZero())
}

func (s *RateServiceTestSuite) TestResolveRate_UppercasesKeyBeforeLookup() {
	s.mockRepo.On("ListEffectiveRates", s.ctx, s.userID).
		Return([]domain.Rate{{AssetKey: "GOLD", Value: decimal.NewFromFloat(90)}}, nil).Once()

	value, err := s.service.ResolveRate(s.ctx, s.userID, " gold ")

	s.Require().NoError(err)
	assert.True(s.T(), value.Equal(decimal.NewFromFloat(90)))
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
