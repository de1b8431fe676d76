package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// exclusionViolationCode is raised by the overlap exclusion constraint.
const exclusionViolationCode = "23P01"

type PgxApplicationRepository struct {
	BaseRepository
}

func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

const applicationColumns = `application_id, employee_id, employee_name, department, designation, contacts, leave_types, from_date, to_date, reason, employee_signature, important_comments, status, approved_by, approved_at, admin_comments, created_at`

func toModelApplication(d domain.LeaveApplication) models.LeaveApplication {
	types := make([]string, len(d.LeaveTypes))
	for i, t := range d.LeaveTypes {
		types[i] = string(t)
	}
	m := models.LeaveApplication{
		ApplicationID:     d.ApplicationID,
		EmployeeID:        d.EmployeeID,
		EmployeeName:      d.EmployeeName,
		Department:        d.Department,
		Designation:       d.Designation,
		Contacts:          d.Contacts,
		LeaveTypes:        types,
		FromDate:          d.FromDate,
		ToDate:            d.ToDate,
		Reason:            d.Reason,
		EmployeeSignature: d.EmployeeSignature,
		ImportantComments: d.ImportantComments,
		Status:            string(d.Status),
		CreatedAt:         d.CreatedAt,
	}
	if d.ApprovedBy != nil {
		m.ApprovedBy.String = *d.ApprovedBy
		m.ApprovedBy.Valid = true
	}
	if d.ApprovedAt != nil {
		m.ApprovedAt.Time = *d.ApprovedAt
		m.ApprovedAt.Valid = true
	}
	if d.AdminComments != "" {
		m.AdminComments.String = d.AdminComments
		m.AdminComments.Valid = true
	}
	return m
}

func toDomainApplication(m models.LeaveApplication) domain.LeaveApplication {
	types := make([]domain.LeaveType, len(m.LeaveTypes))
	for i, t := range m.LeaveTypes {
		types[i] = domain.LeaveType(t)
	}
	d := domain.LeaveApplication{
		ApplicationID:     m.ApplicationID,
		EmployeeID:        m.EmployeeID,
		EmployeeName:      m.EmployeeName,
		Department:        m.Department,
		Designation:       m.Designation,
		Contacts:          m.Contacts,
		LeaveTypes:        types,
		FromDate:          m.FromDate,
		ToDate:            m.ToDate,
		Reason:            m.Reason,
		EmployeeSignature: m.EmployeeSignature,
		ImportantComments: m.ImportantComments,
		Status:            domain.ApplicationStatus(m.Status),
		CreatedAt:         m.CreatedAt,
	}
	if m.ApprovedBy.Valid {
		approvedBy := m.ApprovedBy.String
		d.ApprovedBy = &approvedBy
	}
	if m.ApprovedAt.Valid {
		approvedAt := m.ApprovedAt.Time
		d.ApprovedAt = &approvedAt
	}
	if m.AdminComments.Valid {
		d.AdminComments = m.AdminComments.String
	}
	return d
}

func scanApplication(row pgx.Row) (models.LeaveApplication, error) {
	var m models.LeaveApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.Department,
		&m.Designation,
		&m.Contacts,
		&m.LeaveTypes,
		&m.FromDate,
		&m.ToDate,
		&m.Reason,
		&m.EmployeeSignature,
		&m.ImportantComments,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.AdminComments,
		&m.CreatedAt,
	)
	return m, err
}

// lockBalanceRow locks the employee's ledger row for the year inside tx and
// returns it. Missing rows surface as apperrors.ErrNotFound.
func lockBalanceRow(ctx context.Context, tx pgx.Tx, userID string, year int) (models.LeaveBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM leave_balances WHERE user_id = $1 AND year = $2 FOR UPDATE;`
	m, err := scanBalance(tx.QueryRow(ctx, query, userID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.LeaveBalance{}, apperrors.ErrNotFound
		}
		return models.LeaveBalance{}, fmt.Errorf("failed to lock balance row: %w", err)
	}
	return m, nil
}

// CreateApplication inserts a pending application. The employee's ledger row
// for year(FromDate) is locked first so that concurrent submissions for the
// same employee serialize; the overlap rule and the tracked category's
// balance are then re-checked under that lock before the insert.
func (r *PgxApplicationRepository) CreateApplication(ctx context.Context, app domain.LeaveApplication, trackedDays int) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	trackedType, hasTracked := app.TrackedType()

	locked, err := lockBalanceRow(ctx, tx, app.EmployeeID, app.FromDate.Year())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		// Untracked-only applications may proceed without a ledger row.
		if hasTracked {
			return fmt.Errorf("no leave balance for year %d: %w", app.FromDate.Year(), apperrors.ErrNotFound)
		}
	} else if hasTracked {
		balance := toDomainBalance(locked)
		remaining, _ := balance.Remaining(trackedType)
		if trackedDays > remaining {
			return &apperrors.BalanceError{
				LeaveType: string(trackedType),
				Remaining: remaining,
				Requested: trackedDays,
			}
		}
	}

	var overlappingID string
	overlapQuery := `
		SELECT application_id FROM leave_applications
		WHERE employee_id = $1 AND status IN ('pending', 'approved')
		  AND from_date <= $3 AND to_date >= $2
		LIMIT 1;
	`
	err = tx.QueryRow(ctx, overlapQuery, app.EmployeeID, app.FromDate, app.ToDate).Scan(&overlappingID)
	if err == nil {
		return &apperrors.OverlapError{OverlappingID: overlappingID}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check overlapping applications: %w", err)
	}

	m := toModelApplication(app)
	insertQuery := `
		INSERT INTO leave_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.ApplicationID, m.EmployeeID, m.EmployeeName, m.Department, m.Designation,
		m.Contacts, m.LeaveTypes, m.FromDate, m.ToDate, m.Reason,
		m.EmployeeSignature, m.ImportantComments, m.Status,
		m.ApprovedBy, m.ApprovedAt, m.AdminComments, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolationCode {
			return &apperrors.OverlapError{}
		}
		return fmt.Errorf("failed to insert application %s: %w", m.ApplicationID, err)
	}

	return r.Commit(ctx, tx)
}

// DecideApplication finalizes a pending application. The application row is
// locked first; non-pending rows are rejected so a decision cannot be
// overwritten. On approval the ledger deduction happens under the same
// transaction's balance row lock. A missing ledger row skips the deduction.
func (r *PgxApplicationRepository) DecideApplication(ctx context.Context, applicationID string, decision domain.ApplicationStatus, deciderID string, comments string, decidedAt time.Time) (*domain.LeaveApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + applicationColumns + ` FROM leave_applications WHERE application_id = $1 FOR UPDATE;`
	m, err := scanApplication(tx.QueryRow(ctx, lockQuery, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock application %s: %w", applicationID, err)
	}

	app := toDomainApplication(m)
	if app.Status != domain.ApplicationPending {
		return nil, fmt.Errorf("application %s is already %s: %w", applicationID, app.Status, apperrors.ErrConflict)
	}

	if decision == domain.ApplicationApproved {
		if trackedType, ok := app.TrackedType(); ok {
			locked, err := lockBalanceRow(ctx, tx, app.EmployeeID, app.FromDate.Year())
			if err == nil {
				balance := toDomainBalance(locked)
				balance.ApplyUsage(trackedType, app.Days())
				if err := updateBalanceInTx(ctx, tx, balance); err != nil {
					return nil, err
				}
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			// Missing ledger row: approve without deduction.
		}
	}

	updateQuery := `
		UPDATE leave_applications
		SET status = $1, approved_by = $2, approved_at = $3, admin_comments = $4
		WHERE application_id = $5;
	`
	var adminComments *string
	if comments != "" {
		adminComments = &comments
	}
	_, err = tx.Exec(ctx, updateQuery, string(decision), deciderID, decidedAt, adminComments, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to update application %s: %w", applicationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	app.Status = decision
	app.ApprovedBy = &deciderID
	app.ApprovedAt = &decidedAt
	app.AdminComments = comments
	return &app, nil
}

// updateBalanceInTx writes back the usage counters of a locked ledger row.
func updateBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.LeaveBalance) error {
	m := toModelBalance(balance)
	query := `
		UPDATE leave_balances
		SET sick_leave_used = $1, personal_leave_used = $2, maternity_leave_used = $3,
		    study_leave_used = $4, bereavement_leave_used = $5, updated_at = now()
		WHERE balance_id = $6;
	`
	_, err := tx.Exec(ctx, query,
		m.SickUsed, m.PersonalUsed, m.MaternityUsed,
		m.StudyUsed, m.BereavementUsed, m.BalanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply balance usage: %w", err)
	}
	return nil
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.LeaveApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM leave_applications WHERE application_id = $1;`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application %s: %w", applicationID, err)
	}
	d := toDomainApplication(m)
	return &d, nil
}

func (r *PgxApplicationRepository) FindApplications(ctx context.Context, filter portsrepo.ListApplicationsFilter) ([]domain.LeaveApplication, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	builder := psql.Select(strings.Split(applicationColumns, ", ")...).
		From("leave_applications").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.EmployeeID != "" {
		builder = builder.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"employee_name": "%" + filter.Search + "%"})
	}
	if filter.FromDate != nil {
		builder = builder.Where(sq.GtOrEq{"to_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		builder = builder.Where(sq.LtOrEq{"from_date": *filter.ToDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applications query: %w", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.LeaveApplication{}
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, toDomainApplication(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}

	return apps, nil
}
