package services

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
)

// LeaveReaderSvc defines read operations for leave applications. All reads
// are scoped to the requesting user: admins see everything, employees only
// their own (the calendar additionally shows everyone's approved leaves).
type LeaveReaderSvc interface {
	GetApplicationByID(ctx context.Context, requestingUserID string, applicationID string) (*domain.LeaveApplication, error)
	ListApplications(ctx context.Context, requestingUserID string, params dto.ListApplicationsParams) ([]domain.LeaveApplication, error)
	CalendarApplications(ctx context.Context, requestingUserID string, year int) ([]domain.LeaveApplication, error)
}

// LeaveWorkflowSvc defines the application lifecycle operations.
type LeaveWorkflowSvc interface {
	// SubmitApplication validates and persists a new pending application
	// for the employee, then notifies the admins. Precondition failures
	// surface as apperrors sentinels, apperrors.OverlapError or
	// apperrors.BalanceError.
	SubmitApplication(ctx context.Context, employeeID string, req dto.CreateLeaveApplicationRequest) (*domain.LeaveApplication, error)

	// DecideApplication approves or rejects a pending application on behalf
	// of an admin, deducting the tracked balance on approval, then notifies
	// the employee. Deciding a non-pending application returns
	// apperrors.ErrConflict.
	DecideApplication(ctx context.Context, adminID string, applicationID string, req dto.DecideApplicationRequest) (*domain.LeaveApplication, error)
}

// LeaveSvcFacade combines all leave application service interfaces
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWorkflowSvc
}
