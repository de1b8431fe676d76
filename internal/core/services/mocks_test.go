package services_test

import (
	"context"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, filter portsrepo.ListUsersFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock ApplicationRepository ---

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockApplicationRepository) FindApplications(ctx context.Context, filter portsrepo.ListApplicationsFilter) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockApplicationRepository) CreateApplication(ctx context.Context, app domain.LeaveApplication, trackedDays int) error {
	args := m.Called(ctx, app, trackedDays)
	return args.Error(0)
}

func (m *MockApplicationRepository) DecideApplication(ctx context.Context, applicationID string, decision domain.ApplicationStatus, deciderID string, comments string, decidedAt time.Time) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, applicationID, decision, deciderID, comments, decidedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

var _ portsrepo.ApplicationRepositoryFacade = (*MockApplicationRepository)(nil)

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) FindBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

func (m *MockBalanceRepository) SaveBalance(ctx context.Context, balance domain.LeaveBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockBalanceRepository) UpdateBalance(ctx context.Context, balance domain.LeaveBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

var _ portsrepo.BalanceRepositoryFacade = (*MockBalanceRepository)(nil)

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotifications(ctx context.Context, userID string, filter portsrepo.NotificationFilter, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string, userID string, readAt time.Time) error {
	args := m.Called(ctx, notificationID, userID, readAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string, readAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountApplicationsByStatus(ctx context.Context) (*domain.ApplicationCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationCounts), args.Error(1)
}

func (m *MockReportingRepository) DepartmentStats(ctx context.Context) ([]domain.DepartmentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentCount), args.Error(1)
}

func (m *MockReportingRepository) MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *MockReportingRepository) LeaveTypeStats(ctx context.Context) ([]domain.LeaveTypeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveTypeCount), args.Error(1)
}

func (m *MockReportingRepository) FindUpcomingApproved(ctx context.Context, from, to time.Time) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockReportingRepository) AverageApprovedDuration(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReportingRepository) CountActiveLeaves(ctx context.Context, on time.Time) (int, error) {
	args := m.Called(ctx, on)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CategoryTotals(ctx context.Context, year int) ([]domain.CategoryUtilization, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryUtilization), args.Error(1)
}

func (m *MockReportingRepository) DepartmentPeakAbsences(ctx context.Context, from, to time.Time) ([]domain.DepartmentCoverage, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentCoverage), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// --- Mock BalanceService ---

type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetOrCreateBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveBalance), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock NotificationService ---

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID string, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any) {
	m.Called(ctx, userID, title, message, severity, actionURL, payload)
}

func (m *MockNotificationService) NotifyAdmins(ctx context.Context, title, message string, severity domain.NotificationSeverity, actionURL string, payload map[string]any) {
	m.Called(ctx, title, message, severity, actionURL, payload)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string, filter string, page, perPage int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, userID, filter, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID string, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, userID string, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

// --- Mock Mailer ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendNewApplication(ctx context.Context, to []string, app *domain.LeaveApplication) error {
	args := m.Called(ctx, to, app)
	return args.Error(0)
}

func (m *MockMailer) SendStatusUpdate(ctx context.Context, to string, app *domain.LeaveApplication) error {
	args := m.Called(ctx, to, app)
	return args.Error(0)
}

var _ portssvc.MailerSvc = (*MockMailer)(nil)
