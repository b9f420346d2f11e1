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

// --- Mock LiabilityRepository ---
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) FindLiabilityByID(ctx context.Context, liabilityID string) (*domain.Liability, error) {
	args := m.Called(ctx, liabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) ListLiabilitiesByUser(ctx context.Context, userID string) ([]domain.Liability, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) SaveLiability(ctx context.Context, liability domain.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	args := m.Called(ctx, userID, liabilityID)
	return args.Error(0)
}

// --- Liability Service Test Suite ---
type LiabilityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLiabilityRepository
	service  portssvc.LiabilitySvcFacade
	ctx      context.Context
	userID   string
}

func (s *LiabilityServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockLiabilityRepository)
	s.service = services.NewLiabilityService(s.mockRepo)
	s.ctx = context.Background()
	s.userID = "user-liab"
}

func (s *LiabilityServiceTestSuite) existing(amount float64) *domain.Liability {
	return &domain.Liability{
		LiabilityID:  "liab-1",
		UserID:       s.userID,
		Title:        "Car loan",
		Amount:       decimal.NewFromFloat(amount),
		IsDeductible: true,
	}
}

func (s *LiabilityServiceTestSuite) TestCreateLiability_Success() {
	due := time.Date(2025, 6, 15, 17, 30, 0, 0, time.UTC)
	req := dto.CreateLiabilityRequest{
		Title:        "Car loan",
		Amount:       decimal.NewFromFloat(500),
		DueOn:        &due,
		IsDeductible: true,
	}

	s.mockRepo.On("SaveLiability", s.ctx, mock.MatchedBy(func(l domain.Liability) bool {
		return l.UserID == s.userID &&
			l.Title == "Car loan" &&
			l.Amount.Equal(decimal.NewFromFloat(500)) &&
			l.DueOn != nil && l.DueOn.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	liability, err := s.service.CreateLiability(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(liability)
	assert.NotEmpty(s.T(), liability.LiabilityID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LiabilityServiceTestSuite) TestCreateLiability_RejectsNonPositiveAmount() {
	req := dto.CreateLiabilityRequest{Title: "Bad", Amount: decimal.NewFromFloat(-1)}

	liability, err := s.service.CreateLiability(s.ctx, req, s.userID)

	s.Require().Error(err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrValidation))
	assert.Nil(s.T(), liability)
	s.mockRepo.AssertNotCalled(s.T(), "SaveLiability", mock.Anything, mock.Anything)
}

func (s *LiabilityServiceTestSuite) TestGetLiability_OtherUsersRowIsNotFound() {
	other := s.existing(500)
	other.UserID = "someone-else"
	s.mockRepo.On("FindLiabilityByID", s.ctx, "liab-1").Return(other, nil).Once()

	liability, err := s.service.GetLiability(s.ctx, s.userID, "liab-1")

	s.Require().Error(err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(s.T(), liability)
}

func (s *LiabilityServiceTestSuite) TestSettleLiability_PartialReducesAmount() {
	s.mockRepo.On("FindLiabilityByID", s.ctx, "liab-1").Return(s.existing(500), nil).Once()
	s.mockRepo.On("SaveLiability", s.ctx, mock.MatchedBy(func(l domain.Liability) bool {
		return l.Amount.Equal(decimal.NewFromFloat(300))
	})).Return(nil).Once()

	liability, err := s.service.SettleLiability(s.ctx, s.userID, "liab-1", decimal.NewFromFloat(200))

	s.Require().NoError(err)
	s.Require().NotNil(liability)
	assert.True(s.T(), liability.Amount.Equal(decimal.NewFromFloat(300)))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LiabilityServiceTestSuite) TestSettleLiability_FullSettlementDeletesRow() {
	s.mockRepo.On("FindLiabilityByID", s.ctx, "liab-1").Return(s.existing(500), nil).Once()
	s.mockRepo.On("DeleteLiability", s.ctx, s.userID, "liab-1").Return(nil).Once()

	liability, err := s.service.SettleLiability(s.ctx, s.userID, "liab-1", decimal.NewFromFloat(500))

	s.Require().NoError(err)
	assert.Nil(s.T(), liability)
	s.mockRepo.AssertNotCalled(s.T(), "SaveLiability", mock.Anything, mock.Anything)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LiabilityServiceTestSuite) TestSettleLiability_OverpaymentAlsoDeletes() {
	s.mockRepo.On("FindLiabilityByID", s.ctx, "liab-1").Return(s.existing(500), nil).Once()
	s.mockRepo.On("DeleteLiability", s.ctx, s.userID, "liab-1").Return(nil).Once()

	liability, err := s.service.SettleLiability(s.ctx, s.userID, "liab-1", decimal.NewFromFloat(750))

	s.Require().NoError(err)
	assert.Nil(s.T(), liability)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LiabilityServiceTestSuite) TestSettleLiability_RejectsNonPositiveAmount() {
	liability, err := s.service.SettleLiability(s.ctx, s.userID, "liab-1", decimal.Zero)

	s.Require().Error(err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrValidation))
	assert.Nil(s.T(), liability)
	s.mockRepo.AssertNotCalled(s.T(), "FindLiabilityByID", mock.Anything, mock.Anything)
}

func (s *LiabilityServiceTestSuite) TestUpdateLiability_AppliesOnlyProvidedFields() {
	s.mockRepo.On("FindLiabilityByID", s.ctx, "liab-1").Return(s.existing(500), nil).Once()

	newTitle := "Refinanced car loan"
	deductible := false
	s.mockRepo.On("SaveLiability", s.ctx, mock.MatchedBy(func(l domain.Liability) bool {
		return l.Title == newTitle && !l.IsDeductible && l.Amount.Equal(decimal.NewFromFloat(500))
	})).Return(nil).Once()

	liability, err := s.service.UpdateLiability(s.ctx, dto.UpdateLiabilityRequest{
		Title:        &newTitle,
		IsDeductible: &deductible,
	}, s.userID, "liab-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), newTitle, liability.Title)
	assert.False(s.T(), liability.IsDeductible)
	s.mockRepo.AssertExpectations(s.T())
}

func TestLiabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LiabilityServiceTestSuite))
}
