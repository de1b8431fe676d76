package services_test

import (
	"context"
	"testing"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockNotificationRepository
	mockUserRepo *MockUserRepository
	service      portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewNotificationService(suite.mockRepo, suite.mockUserRepo)
}

func (suite *NotificationServiceTestSuite) TestNotifyAdmins_FansOut() {
	ctx := context.Background()
	admins := []domain.User{
		{UserID: uuid.NewString(), Role: domain.RoleAdmin},
		{UserID: uuid.NewString(), Role: domain.RoleAdmin},
	}

	suite.mockUserRepo.On("FindAdmins", ctx).Return(admins, nil).Once()
	suite.mockRepo.On("SaveNotifications", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 2 && ns[0].UserID == admins[0].UserID && ns[1].UserID == admins[1].UserID
	})).Return(nil).Once()

	suite.service.NotifyAdmins(ctx, "New leave application", "details", domain.SeverityInfo, "/admin", nil)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyAdmins_NoAdminsNoWrite() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindAdmins", ctx).Return([]domain.User{}, nil).Once()

	suite.service.NotifyAdmins(ctx, "title", "message", domain.SeverityInfo, "", nil)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveNotifications", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotify_SwallowsRepositoryError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Return(context.DeadlineExceeded).Once()

	// Must not panic or propagate.
	suite.service.Notify(ctx, userID, "title", "message", domain.SeverityInfo, "", nil)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_NormalizesPaging() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindNotifications", ctx, userID, portsrepo.NotificationFilterAll, 20, 0).
		Return([]domain.Notification{}, nil).Once()
	suite.mockRepo.On("CountUnread", ctx, userID).Return(3, nil).Once()

	_, unread, err := suite.service.ListNotifications(ctx, userID, "bogus-filter", 0, -5)

	suite.Require().NoError(err)
	suite.Equal(3, unread)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_UnreadFilterOffset() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindNotifications", ctx, userID, portsrepo.NotificationFilterUnread, 10, 20).
		Return([]domain.Notification{{NotificationID: uuid.NewString()}}, nil).Once()
	suite.mockRepo.On("CountUnread", ctx, userID).Return(1, nil).Once()

	notifications, unread, err := suite.service.ListNotifications(ctx, userID, "unread", 3, 10)

	suite.Require().NoError(err)
	suite.Len(notifications, 1)
	suite.Equal(1, unread)
}

func (suite *NotificationServiceTestSuite) TestMarkAllRead_ReturnsCount() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("MarkAllRead", ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(4), nil).Once()

	marked, err := suite.service.MarkAllRead(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(int64(4), marked)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
