package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/google/uuid"
)

// mailTimeout bounds the detached e-mail dispatch goroutines.
const mailTimeout = 15 * time.Second

type leaveService struct {
	BaseService
	appRepo         portsrepo.ApplicationRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	balanceSvc      portssvc.BalanceSvcFacade
	notificationSvc portssvc.NotificationSvcFacade
	mailer          portssvc.MailerSvc
}

// NewLeaveService creates the leave application workflow service.
func NewLeaveService(appRepo portsrepo.ApplicationRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, balanceSvc portssvc.BalanceSvcFacade, notificationSvc portssvc.NotificationSvcFacade, mailer portssvc.MailerSvc) portssvc.LeaveSvcFacade {
	return &leaveService{
		appRepo:         appRepo,
		userRepo:        userRepo,
		balanceSvc:      balanceSvc,
		notificationSvc: notificationSvc,
		mailer:          mailer,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

// validateLeaveTypes checks that every label is recognised and that at most
// one balance-tracked category was selected.
func validateLeaveTypes(raw []string) ([]domain.LeaveType, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one leave type is required: %w", apperrors.ErrValidation)
	}

	types := make([]domain.LeaveType, 0, len(raw))
	tracked := 0
	for _, label := range raw {
		t := domain.LeaveType(label)
		if !t.Known() {
			return nil, fmt.Errorf("unknown leave type %q: %w", label, apperrors.ErrValidation)
		}
		if t.Tracked() {
			tracked++
		}
		types = append(types, t)
	}
	if tracked > 1 {
		return nil, fmt.Errorf("select at most one balance-tracked leave type per application: %w", apperrors.ErrUnprocessable)
	}
	return types, nil
}

func (s *leaveService) SubmitApplication(ctx context.Context, employeeID string, req dto.CreateLeaveApplicationRequest) (*domain.LeaveApplication, error) {
	employee, err := s.userRepo.FindUserByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsApproved() {
		return nil, fmt.Errorf("account is %s: %w", employee.Status, apperrors.ErrForbidden)
	}

	types, err := validateLeaveTypes(req.LeaveTypes)
	if err != nil {
		return nil, err
	}

	from, to, ok := req.ParseDates()
	if !ok {
		return nil, fmt.Errorf("dates must use YYYY-MM-DD: %w", apperrors.ErrValidation)
	}
	if from.After(to) {
		return nil, fmt.Errorf("fromDate must not be after toDate: %w", apperrors.ErrValidation)
	}

	app := domain.LeaveApplication{
		ApplicationID:     uuid.NewString(),
		EmployeeID:        employee.UserID,
		EmployeeName:      employee.Name,
		Department:        employee.Department,
		Designation:       employee.Designation,
		Contacts:          employee.Contacts,
		LeaveTypes:        types,
		FromDate:          from,
		ToDate:            to,
		Reason:            req.Reason,
		EmployeeSignature: req.EmployeeSignature,
		ImportantComments: req.ImportantComments,
		Status:            domain.ApplicationPending,
		CreatedAt:         time.Now(),
	}
	days := app.Days()

	// The ledger row must exist before the repository can lock it.
	if _, err := s.balanceSvc.GetOrCreateBalance(ctx, employee.UserID, from.Year()); err != nil {
		return nil, err
	}

	if err := s.appRepo.CreateApplication(ctx, app, days); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Leave application submitted",
		"application_id", app.ApplicationID, "employee_id", employee.UserID, "days", days)

	s.notificationSvc.NotifyAdmins(ctx,
		"New leave application",
		fmt.Sprintf("%s (%s) applied for %d day(s) of leave from %s.",
			employee.Name, employee.Department, days, from.Format("2006-01-02")),
		domain.SeverityInfo,
		"/admin/applications/"+app.ApplicationID,
		map[string]any{
			"application_id": app.ApplicationID,
			"employee_id":    employee.UserID,
			"from_date":      from.Format("2006-01-02"),
			"to_date":        to.Format("2006-01-02"),
		})

	s.mailAdminsAboutSubmission(ctx, app)

	return &app, nil
}

// mailAdminsAboutSubmission dispatches the new-application e-mail in a
// detached goroutine so a slow relay never blocks the request.
func (s *leaveService) mailAdminsAboutSubmission(ctx context.Context, app domain.LeaveApplication) {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list admins for application e-mail", "application_id", app.ApplicationID)
		return
	}
	recipients := make([]string, len(admins))
	for i, admin := range admins {
		recipients[i] = admin.Email
	}
	if len(recipients) == 0 {
		return
	}

	logger := s.GetLogger(ctx)
	go func() {
		mailCtx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := s.mailer.SendNewApplication(mailCtx, recipients, &app); err != nil {
			logger.Error("Failed to send new-application e-mail",
				"error", err.Error(), "application_id", app.ApplicationID)
		}
	}()
}

func (s *leaveService) DecideApplication(ctx context.Context, adminID string, applicationID string, req dto.DecideApplicationRequest) (*domain.LeaveApplication, error) {
	admin, err := s.userRepo.FindUserByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, fmt.Errorf("admin role required: %w", apperrors.ErrForbidden)
	}

	var decision domain.ApplicationStatus
	switch req.Status {
	case string(domain.ApplicationApproved):
		decision = domain.ApplicationApproved
	case string(domain.ApplicationRejected):
		decision = domain.ApplicationRejected
	default:
		return nil, fmt.Errorf("status must be approved or rejected: %w", apperrors.ErrValidation)
	}

	updated, err := s.appRepo.DecideApplication(ctx, applicationID, decision, adminID, req.AdminComments, time.Now())
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Leave application decided",
		"application_id", applicationID, "decision", string(decision), "by", adminID)

	title := "Leave application approved"
	severity := domain.SeveritySuccess
	if decision == domain.ApplicationRejected {
		title = "Leave application rejected"
		severity = domain.SeverityWarning
	}
	s.notificationSvc.Notify(ctx, updated.EmployeeID,
		title,
		fmt.Sprintf("Your leave from %s to %s was %s.",
			updated.FromDate.Format("2006-01-02"), updated.ToDate.Format("2006-01-02"), decision),
		severity,
		"/applications/"+updated.ApplicationID,
		map[string]any{"application_id": updated.ApplicationID, "status": string(decision)})

	s.mailEmployeeAboutDecision(ctx, *updated)

	return updated, nil
}

// mailEmployeeAboutDecision dispatches the status-update e-mail in a
// detached goroutine.
func (s *leaveService) mailEmployeeAboutDecision(ctx context.Context, app domain.LeaveApplication) {
	employee, err := s.userRepo.FindUserByID(ctx, app.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employee for decision e-mail", "application_id", app.ApplicationID)
		return
	}

	logger := s.GetLogger(ctx)
	go func() {
		mailCtx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := s.mailer.SendStatusUpdate(mailCtx, employee.Email, &app); err != nil {
			logger.Error("Failed to send status-update e-mail",
				"error", err.Error(), "application_id", app.ApplicationID)
		}
	}()
}

func (s *leaveService) GetApplicationByID(ctx context.Context, requestingUserID string, applicationID string) (*domain.LeaveApplication, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	app, err := s.appRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && app.EmployeeID != requestingUserID {
		return nil, fmt.Errorf("not your application: %w", apperrors.ErrForbidden)
	}
	return app, nil
}

func (s *leaveService) ListApplications(ctx context.Context, requestingUserID string, params dto.ListApplicationsParams) ([]domain.LeaveApplication, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ListApplicationsFilter{
		Status: domain.ApplicationStatus(params.Status),
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if from, err := time.Parse("2006-01-02", params.FromDate); err == nil {
		filter.FromDate = &from
	}
	if to, err := time.Parse("2006-01-02", params.ToDate); err == nil {
		filter.ToDate = &to
	}

	// Employees only ever see their own applications.
	if !requester.IsAdmin() {
		filter.EmployeeID = requestingUserID
	}

	return s.appRepo.FindApplications(ctx, filter)
}

func (s *leaveService) CalendarApplications(ctx context.Context, requestingUserID string, year int) ([]domain.LeaveApplication, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if year <= 0 {
		year = time.Now().Year()
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	filter := portsrepo.ListApplicationsFilter{
		FromDate: &from,
		ToDate:   &to,
		Limit:    1000,
	}
	// The calendar shows everyone's leave, but non-admins only see what was
	// actually granted.
	if !requester.IsAdmin() {
		filter.Status = domain.ApplicationApproved
	}

	return s.appRepo.FindApplications(ctx, filter)
}
