package services

import (
	"context"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
)

// ReportingSvcFacade defines the admin analytics reports, computed from the
// live tables at request time.
type ReportingSvcFacade interface {
	// DashboardStats returns application totals grouped by status.
	DashboardStats(ctx context.Context) (*domain.ApplicationCounts, error)

	// AnalyticsDashboard assembles the full dashboard payload.
	AnalyticsDashboard(ctx context.Context) (*dto.AnalyticsDashboardResponse, error)

	// Utilization reports used/total per tracked category for one year.
	Utilization(ctx context.Context, year int) (*dto.UtilizationResponse, error)

	// CoverageRisk rates each department's worst-day absence over [from, to].
	CoverageRisk(ctx context.Context, from, to time.Time) ([]domain.DepartmentCoverage, error)
}
