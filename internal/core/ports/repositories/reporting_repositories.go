package repositories

import (
	"context"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// ReportingRepository defines the read-side aggregate queries behind the
// admin dashboards. Rates and risk levels are computed by the service layer;
// the repository returns raw counts.
type ReportingRepository interface {
	// CountApplicationsByStatus returns application totals grouped by status.
	CountApplicationsByStatus(ctx context.Context) (*domain.ApplicationCounts, error)

	// DepartmentStats returns application counts per department.
	DepartmentStats(ctx context.Context) ([]domain.DepartmentCount, error)

	// MonthlyTrends returns decided-application volume for the last n months,
	// oldest first.
	MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error)

	// LeaveTypeStats returns how often each leave type was selected.
	LeaveTypeStats(ctx context.Context) ([]domain.LeaveTypeCount, error)

	// FindUpcomingApproved returns approved applications starting within
	// [from, to], soonest first.
	FindUpcomingApproved(ctx context.Context, from, to time.Time) ([]domain.LeaveApplication, error)

	// AverageApprovedDuration returns the mean inclusive day count of
	// approved applications, or 0 when there are none.
	AverageApprovedDuration(ctx context.Context) (float64, error)

	// CountActiveLeaves returns how many approved applications cover the
	// given day.
	CountActiveLeaves(ctx context.Context, on time.Time) (int, error)

	// CategoryTotals returns summed total/used days per tracked category for
	// one ledger year. Utilization is left zero for the service to fill.
	CategoryTotals(ctx context.Context, year int) ([]domain.CategoryUtilization, error)

	// DepartmentPeakAbsences returns, per department, the approved-leave
	// absence peak over [from, to]: headcount, the worst day and how many
	// were absent on it. Rate and risk are left for the service to fill.
	DepartmentPeakAbsences(ctx context.Context, from, to time.Time) ([]domain.DepartmentCoverage, error)
}
