package repositories

import (
	"context"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// ListApplicationsFilter narrows FindApplications results. Zero values mean
// "no filter".
type ListApplicationsFilter struct {
	EmployeeID string
	Status     domain.ApplicationStatus
	Search     string // matches employee name, case-insensitive
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
	Offset     int
}

// ApplicationReader defines read operations for leave applications
type ApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its ID.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.LeaveApplication, error)

	// FindApplications retrieves applications matching the filter, newest first.
	FindApplications(ctx context.Context, filter ListApplicationsFilter) ([]domain.LeaveApplication, error)
}

// ApplicationWriter defines write operations for leave applications.
//
// Both mutations run inside a single database transaction so that concurrent
// submissions and decisions for the same employee serialize on the employee's
// ledger row.
type ApplicationWriter interface {
	// CreateApplication persists a new pending application. Inside one
	// transaction it locks the employee's ledger row for year(FromDate),
	// re-checks the overlap rule and the tracked category's remaining
	// balance, then inserts. Returns apperrors.OverlapError or
	// apperrors.BalanceError when a precondition fails under the lock.
	// trackedDays is ignored when the application carries no tracked category.
	CreateApplication(ctx context.Context, app domain.LeaveApplication, trackedDays int) error

	// DecideApplication finalizes a pending application. Inside one
	// transaction it locks the application row, rejects non-pending ones
	// with apperrors.ErrConflict, and on approval adds the day count to the
	// tracked category's used counter under the ledger row lock. A missing
	// ledger row skips the deduction. Returns the updated application.
	DecideApplication(ctx context.Context, applicationID string, decision domain.ApplicationStatus, deciderID string, comments string, decidedAt time.Time) (*domain.LeaveApplication, error)
}

// ApplicationRepositoryFacade combines all application repository interfaces
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
