package services

import (
	"context"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
)

// BalanceSvcFacade defines the balance ledger operations.
type BalanceSvcFacade interface {
	// GetOrCreateBalance returns the ledger row for (user, year), creating
	// it with the configured defaults when absent. Idempotent under
	// concurrent calls.
	GetOrCreateBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error)
}
