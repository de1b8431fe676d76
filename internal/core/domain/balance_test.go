package domain_test

import (
	"testing"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLeaveBalance_Remaining(t *testing.T) {
	balance := domain.LeaveBalance{
		Sick:        domain.CategoryBalance{Total: 14, Used: 4},
		Personal:    domain.CategoryBalance{Total: 21, Used: 21},
		Maternity:   domain.CategoryBalance{Total: 90, Used: 0},
		Study:       domain.CategoryBalance{Total: 10, Used: 2},
		Bereavement: domain.CategoryBalance{Total: 5, Used: 5},
	}

	remaining, tracked := balance.Remaining(domain.SickLeave)
	assert.True(t, tracked)
	assert.Equal(t, 10, remaining)

	remaining, tracked = balance.Remaining(domain.PersonalLeave)
	assert.True(t, tracked)
	assert.Equal(t, 0, remaining)

	// Untracked types carry no limit.
	_, tracked = balance.Remaining(domain.UnpaidLeave)
	assert.False(t, tracked)
	_, tracked = balance.Remaining(domain.OtherLeave)
	assert.False(t, tracked)
}

func TestLeaveBalance_ApplyUsage(t *testing.T) {
	balance := domain.LeaveBalance{
		Study: domain.CategoryBalance{Total: 10, Used: 3},
	}

	balance.ApplyUsage(domain.StudyLeave, 4)
	assert.Equal(t, 7, balance.Study.Used)

	// Untracked usage is a no-op.
	balance.ApplyUsage(domain.UnpaidLeave, 30)
	assert.Equal(t, 7, balance.Study.Used)

	remaining, _ := balance.Remaining(domain.StudyLeave)
	assert.Equal(t, 3, remaining)
}
