package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceRepository struct {
	db *pgxpool.Pool
}

func newPgxBalanceRepository(db *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{db: db}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `balance_id, user_id, year,
	sick_leave_total, sick_leave_used,
	personal_leave_total, personal_leave_used,
	maternity_leave_total, maternity_leave_used,
	study_leave_total, study_leave_used,
	bereavement_leave_total, bereavement_leave_used,
	created_at, updated_at`

func toModelBalance(d domain.LeaveBalance) models.LeaveBalance {
	return models.LeaveBalance{
		BalanceID:        d.BalanceID,
		UserID:           d.UserID,
		Year:             d.Year,
		SickTotal:        d.Sick.Total,
		SickUsed:         d.Sick.Used,
		PersonalTotal:    d.Personal.Total,
		PersonalUsed:     d.Personal.Used,
		MaternityTotal:   d.Maternity.Total,
		MaternityUsed:    d.Maternity.Used,
		StudyTotal:       d.Study.Total,
		StudyUsed:        d.Study.Used,
		BereavementTotal: d.Bereavement.Total,
		BereavementUsed:  d.Bereavement.Used,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDomainBalance(m models.LeaveBalance) domain.LeaveBalance {
	return domain.LeaveBalance{
		BalanceID:   m.BalanceID,
		UserID:      m.UserID,
		Year:        m.Year,
		Sick:        domain.CategoryBalance{Total: m.SickTotal, Used: m.SickUsed},
		Personal:    domain.CategoryBalance{Total: m.PersonalTotal, Used: m.PersonalUsed},
		Maternity:   domain.CategoryBalance{Total: m.MaternityTotal, Used: m.MaternityUsed},
		Study:       domain.CategoryBalance{Total: m.StudyTotal, Used: m.StudyUsed},
		Bereavement: domain.CategoryBalance{Total: m.BereavementTotal, Used: m.BereavementUsed},
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func scanBalance(row pgx.Row) (models.LeaveBalance, error) {
	var m models.LeaveBalance
	err := row.Scan(
		&m.BalanceID, &m.UserID, &m.Year,
		&m.SickTotal, &m.SickUsed,
		&m.PersonalTotal, &m.PersonalUsed,
		&m.MaternityTotal, &m.MaternityUsed,
		&m.StudyTotal, &m.StudyUsed,
		&m.BereavementTotal, &m.BereavementUsed,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgxBalanceRepository) FindBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM leave_balances WHERE user_id = $1 AND year = $2;`
	m, err := scanBalance(r.db.QueryRow(ctx, query, userID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance for user %s year %d: %w", userID, year, err)
	}
	d := toDomainBalance(m)
	return &d, nil
}

func (r *PgxBalanceRepository) SaveBalance(ctx context.Context, balance domain.LeaveBalance) error {
	m := toModelBalance(balance)
	query := `
		INSERT INTO leave_balances (` + balanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.BalanceID, m.UserID, m.Year,
		m.SickTotal, m.SickUsed,
		m.PersonalTotal, m.PersonalUsed,
		m.MaternityTotal, m.MaternityUsed,
		m.StudyTotal, m.StudyUsed,
		m.BereavementTotal, m.BereavementUsed,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("balance for user %s year %d already exists: %w", m.UserID, m.Year, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save balance: %w", err)
	}
	return nil
}

func (r *PgxBalanceRepository) UpdateBalance(ctx context.Context, balance domain.LeaveBalance) error {
	m := toModelBalance(balance)
	query := `
		UPDATE leave_balances
		SET sick_leave_total = $1, sick_leave_used = $2,
		    personal_leave_total = $3, personal_leave_used = $4,
		    maternity_leave_total = $5, maternity_leave_used = $6,
		    study_leave_total = $7, study_leave_used = $8,
		    bereavement_leave_total = $9, bereavement_leave_used = $10,
		    updated_at = now()
		WHERE balance_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.SickTotal, m.SickUsed,
		m.PersonalTotal, m.PersonalUsed,
		m.MaternityTotal, m.MaternityUsed,
		m.StudyTotal, m.StudyUsed,
		m.BereavementTotal, m.BereavementUsed,
		m.BalanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
