package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/shopspring/decimal"
)

// Coverage-risk thresholds, as percentages of department headcount absent on
// the worst day of the window.
var (
	coverageHighThreshold   = decimal.NewFromInt(30)
	coverageMediumThreshold = decimal.NewFromInt(15)
	percentFactor           = decimal.NewFromInt(100)
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the admin analytics service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardStats(ctx context.Context) (*domain.ApplicationCounts, error) {
	return s.reportingRepo.CountApplicationsByStatus(ctx)
}

func (s *reportingService) AnalyticsDashboard(ctx context.Context) (*dto.AnalyticsDashboardResponse, error) {
	counts, err := s.reportingRepo.CountApplicationsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	departmentStats, err := s.reportingRepo.DepartmentStats(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.reportingRepo.MonthlyTrends(ctx, 6)
	if err != nil {
		return nil, err
	}

	typeStats, err := s.reportingRepo.LeaveTypeStats(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	upcoming, err := s.reportingRepo.FindUpcomingApproved(ctx, today, today.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	avgDuration, err := s.reportingRepo.AverageApprovedDuration(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.reportingRepo.CountActiveLeaves(ctx, today)
	if err != nil {
		return nil, err
	}

	mostCommon := ""
	if len(typeStats) > 0 {
		mostCommon = string(typeStats[0].Type)
	}

	// Approval rate over decided applications only: pending ones are not a
	// verdict either way.
	approvalRate := decimal.Zero
	decided := counts.Approved + counts.Rejected
	if decided > 0 {
		approvalRate = decimal.NewFromInt(int64(counts.Approved)).
			Div(decimal.NewFromInt(int64(decided))).
			Mul(percentFactor).Round(2)
	}

	return &dto.AnalyticsDashboardResponse{
		DepartmentStats:      departmentStats,
		MonthlyTrends:        trends,
		LeaveTypeStats:       typeStats,
		UpcomingLeaves:       dto.ToLeaveApplicationResponses(upcoming),
		AverageLeaveDuration: decimal.NewFromFloat(avgDuration).Round(2),
		MostCommonLeaveType:  mostCommon,
		ApprovalRate:         approvalRate,
		ActiveLeaves:         active,
	}, nil
}

func (s *reportingService) Utilization(ctx context.Context, year int) (*dto.UtilizationResponse, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	categories, err := s.reportingRepo.CategoryTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to compute utilization: %w", err)
	}

	totalDays, usedDays := 0, 0
	for i := range categories {
		totalDays += categories[i].Total
		usedDays += categories[i].Used
		if categories[i].Total > 0 {
			categories[i].Utilization = decimal.NewFromInt(int64(categories[i].Used)).
				Div(decimal.NewFromInt(int64(categories[i].Total))).
				Mul(percentFactor).Round(2)
		}
	}

	overall := decimal.Zero
	if totalDays > 0 {
		overall = decimal.NewFromInt(int64(usedDays)).
			Div(decimal.NewFromInt(int64(totalDays))).
			Mul(percentFactor).Round(2)
	}

	return &dto.UtilizationResponse{
		Year:       year,
		Overall:    overall,
		Categories: categories,
	}, nil
}

func (s *reportingService) CoverageRisk(ctx context.Context, from, to time.Time) ([]domain.DepartmentCoverage, error) {
	coverage, err := s.reportingRepo.DepartmentPeakAbsences(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute coverage risk: %w", err)
	}

	for i := range coverage {
		c := &coverage[i]
		if c.Headcount > 0 {
			c.AbsenceRate = decimal.NewFromInt(int64(c.PeakAbsent)).
				Div(decimal.NewFromInt(int64(c.Headcount))).
				Mul(percentFactor).Round(2)
		}
		switch {
		case c.AbsenceRate.GreaterThan(coverageHighThreshold):
			c.Risk = domain.CoverageRiskHigh
		case c.AbsenceRate.GreaterThan(coverageMediumThreshold):
			c.Risk = domain.CoverageRiskMedium
		default:
			c.Risk = domain.CoverageRiskLow
		}
	}

	return coverage, nil
}
