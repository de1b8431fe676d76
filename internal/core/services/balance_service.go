package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portsrepo "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/repositories"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	"github.com/google/uuid"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepositoryFacade
	defaults    config.LeaveDefaults
}

// NewBalanceService creates the balance ledger service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, defaults config.LeaveDefaults) portssvc.BalanceSvcFacade {
	return &balanceService{balanceRepo: balanceRepo, defaults: defaults}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetOrCreateBalance returns the (user, year) ledger row, creating it with
// the configured defaults when absent. A concurrent creation losing the
// insert race falls back to re-reading the winner's row.
func (s *balanceService) GetOrCreateBalance(ctx context.Context, userID string, year int) (*domain.LeaveBalance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, userID, year)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up balance: %w", err)
	}

	now := time.Now()
	fresh := domain.LeaveBalance{
		BalanceID:   uuid.NewString(),
		UserID:      userID,
		Year:        year,
		Sick:        domain.CategoryBalance{Total: s.defaults.Sick},
		Personal:    domain.CategoryBalance{Total: s.defaults.Personal},
		Maternity:   domain.CategoryBalance{Total: s.defaults.Maternity},
		Study:       domain.CategoryBalance{Total: s.defaults.Study},
		Bereavement: domain.CategoryBalance{Total: s.defaults.Bereavement},
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.balanceRepo.SaveBalance(ctx, fresh); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.balanceRepo.FindBalance(ctx, userID, year)
		}
		return nil, fmt.Errorf("failed to create balance: %w", err)
	}

	s.LogInfo(ctx, "Created leave balance", "user_id", userID, "year", year)
	return &fresh, nil
}
