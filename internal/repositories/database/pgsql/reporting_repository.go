package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) CountApplicationsByStatus(ctx context.Context) (*domain.ApplicationCounts, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'approved'),
		       count(*) FILTER (WHERE status = 'rejected')
		FROM leave_applications;
	`
	var counts domain.ApplicationCounts
	err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.Pending, &counts.Approved, &counts.Rejected)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by status: %w", err)
	}
	return &counts, nil
}

func (r *PgxReportingRepository) DepartmentStats(ctx context.Context) ([]domain.DepartmentCount, error) {
	query := `
		SELECT department, count(*)
		FROM leave_applications
		GROUP BY department
		ORDER BY count(*) DESC, department;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query department stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.DepartmentCount{}
	for rows.Next() {
		var s domain.DepartmentCount
		if err := rows.Scan(&s.Department, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department stat: %w", err)
		}
		stats = append(stats, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating department stats: %w", rows.Err())
	}
	return stats, nil
}

func (r *PgxReportingRepository) MonthlyTrends(ctx context.Context, months int) ([]domain.MonthlyTrend, error) {
	if months <= 0 {
		months = 6
	}
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'),
		       count(*) FILTER (WHERE status = 'approved'),
		       count(*) FILTER (WHERE status = 'rejected')
		FROM leave_applications
		WHERE created_at >= date_trunc('month', now()) - make_interval(months => $1 - 1)
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trends: %w", err)
	}
	defer rows.Close()

	trends := []domain.MonthlyTrend{}
	for rows.Next() {
		var t domain.MonthlyTrend
		if err := rows.Scan(&t.Month, &t.Approved, &t.Rejected); err != nil {
			return nil, fmt.Errorf("failed to scan monthly trend: %w", err)
		}
		trends = append(trends, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly trends: %w", rows.Err())
	}
	return trends, nil
}

func (r *PgxReportingRepository) LeaveTypeStats(ctx context.Context) ([]domain.LeaveTypeCount, error) {
	// A multi-type application counts once per selected type.
	query := `
		SELECT t, count(*)
		FROM leave_applications, unnest(leave_types) AS t
		GROUP BY t
		ORDER BY count(*) DESC, t;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave type stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.LeaveTypeCount{}
	for rows.Next() {
		var s domain.LeaveTypeCount
		if err := rows.Scan(&s.Type, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leave type stat: %w", err)
		}
		stats = append(stats, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating leave type stats: %w", rows.Err())
	}
	return stats, nil
}

func (r *PgxReportingRepository) FindUpcomingApproved(ctx context.Context, from, to time.Time) ([]domain.LeaveApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM leave_applications
		WHERE status = 'approved' AND from_date >= $1 AND from_date <= $2
		ORDER BY from_date;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming approved leaves: %w", err)
	}
	defer rows.Close()

	apps := []domain.LeaveApplication{}
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upcoming leave: %w", err)
		}
		apps = append(apps, toDomainApplication(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating upcoming leaves: %w", rows.Err())
	}
	return apps, nil
}

func (r *PgxReportingRepository) AverageApprovedDuration(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(avg(to_date - from_date + 1), 0)::float8
		FROM leave_applications
		WHERE status = 'approved';
	`
	var avg float64
	if err := r.db.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to compute average approved duration: %w", err)
	}
	return avg, nil
}

func (r *PgxReportingRepository) CountActiveLeaves(ctx context.Context, on time.Time) (int, error) {
	query := `
		SELECT count(*)
		FROM leave_applications
		WHERE status = 'approved' AND from_date <= $1 AND to_date >= $1;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, on).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active leaves: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CategoryTotals(ctx context.Context, year int) ([]domain.CategoryUtilization, error) {
	query := `
		SELECT COALESCE(sum(sick_leave_total), 0), COALESCE(sum(sick_leave_used), 0),
		       COALESCE(sum(personal_leave_total), 0), COALESCE(sum(personal_leave_used), 0),
		       COALESCE(sum(maternity_leave_total), 0), COALESCE(sum(maternity_leave_used), 0),
		       COALESCE(sum(study_leave_total), 0), COALESCE(sum(study_leave_used), 0),
		       COALESCE(sum(bereavement_leave_total), 0), COALESCE(sum(bereavement_leave_used), 0)
		FROM leave_balances
		WHERE year = $1;
	`
	totals := make([]domain.CategoryUtilization, len(domain.TrackedLeaveTypes))
	for i, t := range domain.TrackedLeaveTypes {
		totals[i].Type = t
	}
	err := r.db.QueryRow(ctx, query, year).Scan(
		&totals[0].Total, &totals[0].Used,
		&totals[1].Total, &totals[1].Used,
		&totals[2].Total, &totals[2].Used,
		&totals[3].Total, &totals[3].Used,
		&totals[4].Total, &totals[4].Used,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category totals: %w", err)
	}
	return totals, nil
}

func (r *PgxReportingRepository) DepartmentPeakAbsences(ctx context.Context, from, to time.Time) ([]domain.DepartmentCoverage, error) {
	query := `
		WITH days AS (
			SELECT generate_series($1::date, $2::date, '1 day')::date AS day
		), absences AS (
			SELECT u.department, d.day, count(DISTINCT la.employee_id) AS absent
			FROM days d
			JOIN leave_applications la
			  ON la.status = 'approved' AND la.from_date <= d.day AND la.to_date >= d.day
			JOIN users u ON u.user_id = la.employee_id
			GROUP BY u.department, d.day
		), peaks AS (
			SELECT DISTINCT ON (department) department, day, absent
			FROM absences
			ORDER BY department, absent DESC, day
		)
		SELECT h.department, h.headcount, COALESCE(p.absent, 0), COALESCE(p.day, $1::date)
		FROM (
			SELECT department, count(*) AS headcount
			FROM users
			WHERE status = 'approved'
			GROUP BY department
		) h
		LEFT JOIN peaks p ON p.department = h.department
		ORDER BY h.department;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query department peak absences: %w", err)
	}
	defer rows.Close()

	coverage := []domain.DepartmentCoverage{}
	for rows.Next() {
		var c domain.DepartmentCoverage
		if err := rows.Scan(&c.Department, &c.Headcount, &c.PeakAbsent, &c.PeakDay); err != nil {
			return nil, fmt.Errorf("failed to scan department coverage: %w", err)
		}
		coverage = append(coverage, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating department coverage: %w", rows.Err())
	}
	return coverage, nil
}
