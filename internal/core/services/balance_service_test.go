package services_test

import (
	"context"
	"testing"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testDefaults = config.LeaveDefaults{
	Sick:        14,
	Personal:    21,
	Maternity:   90,
	Study:       10,
	Bereavement: 5,
}

type BalanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBalanceRepository
	service  portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBalanceRepository)
	suite.service = services.NewBalanceService(suite.mockRepo, testDefaults)
}

func (suite *BalanceServiceTestSuite) TestGetOrCreateBalance_Existing() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.LeaveBalance{
		BalanceID: uuid.NewString(),
		UserID:    userID,
		Year:      2026,
		Sick:      domain.CategoryBalance{Total: 14, Used: 2},
	}

	suite.mockRepo.On("FindBalance", ctx, userID, 2026).Return(existing, nil).Once()

	balance, err := suite.service.GetOrCreateBalance(ctx, userID, 2026)

	suite.Require().NoError(err)
	suite.Equal(existing.BalanceID, balance.BalanceID)
	suite.Equal(2, balance.Sick.Used)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBalance", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetOrCreateBalance_CreatesWithDefaults() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindBalance", ctx, userID, 2026).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBalance", ctx, mock.MatchedBy(func(b domain.LeaveBalance) bool {
		return b.UserID == userID && b.Year == 2026 &&
			b.Sick.Total == 14 && b.Personal.Total == 21 &&
			b.Maternity.Total == 90 && b.Study.Total == 10 && b.Bereavement.Total == 5 &&
			b.Sick.Used == 0
	})).Return(nil).Once()

	balance, err := suite.service.GetOrCreateBalance(ctx, userID, 2026)

	suite.Require().NoError(err)
	suite.NotEmpty(balance.BalanceID)
	suite.Equal(21, balance.Personal.Total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetOrCreateBalance_LosesInsertRace() {
	ctx := context.Background()
	userID := uuid.NewString()
	winner := &domain.LeaveBalance{BalanceID: uuid.NewString(), UserID: userID, Year: 2026}

	suite.mockRepo.On("FindBalance", ctx, userID, 2026).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBalance", ctx, mock.AnythingOfType("domain.LeaveBalance")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindBalance", ctx, userID, 2026).Return(winner, nil).Once()

	balance, err := suite.service.GetOrCreateBalance(ctx, userID, 2026)

	suite.Require().NoError(err)
	suite.Equal(winner.BalanceID, balance.BalanceID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetOrCreateBalance_LookupError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindBalance", ctx, userID, 2026).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetOrCreateBalance(ctx, userID, 2026)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBalance", mock.Anything, mock.Anything)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
