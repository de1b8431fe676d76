package dto

import (
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the status-count summary card.
type DashboardStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// AnalyticsDashboardResponse is the full admin analytics payload.
type AnalyticsDashboardResponse struct {
	DepartmentStats      []domain.DepartmentCount   `json:"departmentStats"`
	MonthlyTrends        []domain.MonthlyTrend      `json:"monthlyTrends"`
	LeaveTypeStats       []domain.LeaveTypeCount    `json:"leaveTypeStats"`
	UpcomingLeaves       []LeaveApplicationResponse `json:"upcomingLeaves"`
	AverageLeaveDuration decimal.Decimal            `json:"averageLeaveDuration"`
	MostCommonLeaveType  string                     `json:"mostCommonLeaveType"`
	ApprovalRate         decimal.Decimal            `json:"approvalRate"`
	ActiveLeaves         int                        `json:"activeLeaves"`
}

// UtilizationResponse is the ledger utilization report for one year.
type UtilizationResponse struct {
	Year       int                          `json:"year"`
	Overall    decimal.Decimal              `json:"overall"`
	Categories []domain.CategoryUtilization `json:"categories"`
}

// CoverageRiskResponse is the per-department coverage-risk report.
type CoverageRiskResponse struct {
	FromDate    string                      `json:"fromDate"`
	ToDate      string                      `json:"toDate"`
	Departments []domain.DepartmentCoverage `json:"departments"`
}

// CoverageRiskParams defines query parameters for the coverage-risk report.
type CoverageRiskParams struct {
	FromDate string `form:"from" binding:"required"`
	ToDate   string `form:"to" binding:"required"`
}

// ParseDates parses both window bounds using the YYYY-MM-DD layout.
func (p *CoverageRiskParams) ParseDates() (from, to time.Time, err error) {
	from, err = time.Parse(dateLayout, p.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", p.FromDate)
	}
	to, err = time.Parse(dateLayout, p.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", p.ToDate)
	}
	return from, to, nil
}

// UtilizationParams defines query parameters for the utilization report.
type UtilizationParams struct {
	Year int `form:"year"`
}
