package pgsql

import (
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ApplicationRepo:  newPgxApplicationRepository(dbPool),
		BalanceRepo:      newPgxBalanceRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
