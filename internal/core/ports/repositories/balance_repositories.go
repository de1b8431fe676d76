package repositories

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// BalanceReader defines read operations for leave balances
type BalanceReader interface {
	// FindBalance retrieves the ledger row for a user and year.
	FindBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error)
}

// BalanceWriter defines write operations for leave balances
type BalanceWriter interface {
	// SaveBalance persists a new ledger row. Returns apperrors.ErrDuplicate
	// when a row for (user, year) already exists.
	SaveBalance(ctx context.Context, balance domain.LeaveBalance) error

	// UpdateBalance overwrites the category totals and usage of an existing row.
	UpdateBalance(ctx context.Context, balance domain.LeaveBalance) error
}

// BalanceRepositoryFacade combines all balance repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
