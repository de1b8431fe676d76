package services_test

import (
	"context"
	"testing"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockUserRepository
	mockBalanceSvc   *MockBalanceService
	mockNotification *MockNotificationService
	cfg              *config.Config
	service          portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockBalanceSvc = new(MockBalanceService)
	suite.mockNotification = new(MockNotificationService)
	suite.cfg = &config.Config{
		CompanyEmailSuffix: ".ewordpublishers@gmail.com",
		AdminEmail:         "admin@ewordpublishers.com",
		LeaveDefaults:      testDefaults,
	}
	suite.service = services.NewUserService(suite.mockRepo, suite.mockBalanceSvc, suite.mockNotification, suite.cfg)
}

func (suite *UserServiceTestSuite) TestRegister_CompanySuffixAutoApproved() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:      "Jane.ewordpublishers@gmail.com",
		Password:   "s3cretpass",
		Name:       "Jane Doe",
		Department: "Editorial",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "jane.ewordpublishers@gmail.com" &&
			u.Status == domain.StatusApproved &&
			u.Role == domain.RoleEmployee
	})).Return(nil).Once()
	suite.mockBalanceSvc.On("GetOrCreateBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("int")).
		Return(&domain.LeaveBalance{}, nil).Once()
	suite.mockNotification.On("Notify", ctx, mock.AnythingOfType("string"), "Account approved", mock.Anything, domain.SeveritySuccess, mock.Anything, mock.Anything).Once()

	user, autoApproved, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.True(autoApproved)
	suite.Equal(domain.StatusApproved, user.Status)
	suite.True(utils.CheckPasswordHash("s3cretpass", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_OutsiderStartsPending() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "jane@gmail.com",
		Password: "s3cretpass",
		Name:     "Jane Doe",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Status == domain.StatusPending
	})).Return(nil).Once()
	suite.mockNotification.On("NotifyAdmins", ctx, "New registration pending approval", mock.Anything, domain.SeverityInfo, mock.Anything, mock.Anything).Once()

	user, autoApproved, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.False(autoApproved)
	suite.Equal(domain.StatusPending, user.Status)
	suite.mockBalanceSvc.AssertNotCalled(suite.T(), "GetOrCreateBalance", mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotification.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_AdminEmailBootstrapsAdmin() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "Admin@ewordpublishers.com",
		Password: "s3cretpass",
		Name:     "Head of HR",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Status == domain.StatusApproved
	})).Return(nil).Once()
	suite.mockBalanceSvc.On("GetOrCreateBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("int")).
		Return(&domain.LeaveBalance{}, nil).Once()
	suite.mockNotification.On("Notify", ctx, mock.AnythingOfType("string"), "Account approved", mock.Anything, domain.SeveritySuccess, mock.Anything, mock.Anything).Once()

	user, autoApproved, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.True(autoApproved)
	suite.Equal(domain.RoleAdmin, user.Role)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "jane@gmail.com", Password: "s3cretpass", Name: "Jane"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	_, _, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jane@gmail.com",
		PasswordHash: hash,
		Status:       domain.StatusApproved,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@gmail.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "jane@gmail.com", "s3cretpass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	user := &domain.User{PasswordHash: hash, Status: domain.StatusApproved}

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@gmail.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@gmail.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIsUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@gmail.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@gmail.com", "whatever")

	suite.Require().Error(err)
	// Unknown accounts are indistinguishable from wrong passwords.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_PendingAccountForbidden() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	user := &domain.User{PasswordHash: hash, Status: domain.StatusPending}

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@gmail.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@gmail.com", "s3cretpass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestApproveUser_ProvisionsBalance() {
	ctx := context.Background()
	admin := approvedAdmin()
	pending := &domain.User{UserID: uuid.NewString(), Status: domain.StatusPending}

	suite.mockRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, pending.UserID).Return(pending, nil).Once()
	suite.mockRepo.On("UpdateUserStatus", ctx, pending.UserID, domain.StatusApproved).Return(nil).Once()
	suite.mockBalanceSvc.On("GetOrCreateBalance", ctx, pending.UserID, mock.AnythingOfType("int")).
		Return(&domain.LeaveBalance{}, nil).Once()
	suite.mockNotification.On("Notify", ctx, pending.UserID, "Account approved", mock.Anything, domain.SeveritySuccess, mock.Anything, mock.Anything).Once()

	user, err := suite.service.ApproveUser(ctx, admin.UserID, pending.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, user.Status)
	suite.mockBalanceSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestApproveUser_NonAdminForbidden() {
	ctx := context.Background()
	employee := approvedEmployee()
	pendingID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, employee.UserID).Return(employee, nil).Once()

	_, err := suite.service.ApproveUser(ctx, employee.UserID, pendingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestApproveUser_AlreadyApprovedConflict() {
	ctx := context.Background()
	admin := approvedAdmin()
	already := &domain.User{UserID: uuid.NewString(), Status: domain.StatusApproved}

	suite.mockRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, already.UserID).Return(already, nil).Once()

	_, err := suite.service.ApproveUser(ctx, admin.UserID, already.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *UserServiceTestSuite) TestDeactivateThenReactivate() {
	ctx := context.Background()
	admin := approvedAdmin()
	target := &domain.User{UserID: uuid.NewString(), Status: domain.StatusApproved}

	suite.mockRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Twice()
	suite.mockRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Twice()
	suite.mockRepo.On("UpdateUserStatus", ctx, target.UserID, domain.StatusDeactivated).Return(nil).Once()
	suite.mockRepo.On("UpdateUserStatus", ctx, target.UserID, domain.StatusApproved).Return(nil).Once()
	suite.mockNotification.On("Notify", ctx, target.UserID, "Account reactivated", mock.Anything, domain.SeveritySuccess, mock.Anything, mock.Anything).Once()

	deactivated, err := suite.service.DeactivateUser(ctx, admin.UserID, target.UserID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeactivated, deactivated.Status)

	target.Status = domain.StatusDeactivated
	reactivated, err := suite.service.ReactivateUser(ctx, admin.UserID, target.UserID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, reactivated.Status)
}

func (suite *UserServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()
	hash, err := utils.HashPassword("oldpass123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), PasswordHash: hash}

	suite.mockRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, user.UserID, "notoldpass", "newpass123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestLoginOrRegisterGoogle_NewAccountPending() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "jane@gmail.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Status == domain.StatusPending && u.Department == "Unassigned"
	})).Return(nil).Once()
	suite.mockNotification.On("NotifyAdmins", ctx, "New registration pending approval", mock.Anything, domain.SeverityInfo, mock.Anything, mock.Anything).Once()

	user, err := suite.service.LoginOrRegisterGoogle(ctx, "jane@gmail.com", "Jane Doe")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLoginOrRegisterGoogle_ExistingApproved() {
	ctx := context.Background()
	existing := approvedEmployee()

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	user, err := suite.service.LoginOrRegisterGoogle(ctx, existing.Email, existing.Name)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
